package service

import (
	"context"

	"ai-legaldoc-be/pkg/engine/analysis"
	"ai-legaldoc-be/pkg/engine/qa"
	"ai-legaldoc-be/pkg/report"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// nopLogger keeps service tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}

// fakeAnalysisProvider returns a canned result or error, optionally running
// a hook before completing (to simulate mid-flight session changes).
type fakeAnalysisProvider struct {
	result *analysis.Result
	err    error
	calls  int
	before func()
}

func (f *fakeAnalysisProvider) Analyze(_ context.Context, _ string, _ []byte) (*analysis.Result, error) {
	f.calls++
	if f.before != nil {
		f.before()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeQAProvider struct {
	answer *qa.Answer
	err    error
	calls  int
	before func()

	gotQuestion string
	gotContext  string
}

func (f *fakeQAProvider) Answer(_ context.Context, question, docContext string) (*qa.Answer, error) {
	f.calls++
	f.gotQuestion = question
	f.gotContext = docContext
	if f.before != nil {
		f.before()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

type fakeDelivery struct {
	err   error
	calls int
	got   *report.SendRequest
}

func (f *fakeDelivery) Send(_ context.Context, req *report.SendRequest) error {
	f.calls++
	f.got = req
	return f.err
}
