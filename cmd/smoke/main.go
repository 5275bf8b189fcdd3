package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, sessionID string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}

	client := &http.Client{Timeout: 180 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func uploadDocument(path, sessionID string) (*http.Response, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path))},
		"Content-Type":        {"application/pdf"},
	})
	if err != nil {
		return nil, nil, err
	}
	part.Write(content)
	writer.Close()

	req, err := http.NewRequest("POST", baseURL+"/document/v1/upload", &body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Session-Id", sessionID)

	client := &http.Client{Timeout: 180 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	if len(os.Args) < 2 {
		color.Red("Usage: smoke <path-to-pdf>")
		os.Exit(1)
	}
	pdfPath := os.Args[1]
	sessionID := "smoke-test"

	color.Cyan("🚀 Starting Legal Document Assistant Smoke Test\n")

	// 1. Upload & analyze
	color.Yellow("\n[1] Upload document: %s", pdfPath)
	resp, body, err := uploadDocument(pdfPath, sessionID)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Ask a question
	color.Yellow("\n[2] Ask: What is the termination clause?")
	resp, body, err = sendRequest("POST", "/chat/v1/ask", sessionID, map[string]string{
		"question": "What is the termination clause?",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 3. Chat history
	color.Yellow("\n[3] Get chat history")
	resp, body, err = sendRequest("GET", "/chat/v1/history", sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 4. Download report
	color.Yellow("\n[4] Download plain-text report")
	resp, body, err = sendRequest("GET", "/report/v1/download", sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	fmt.Println(string(body))

	color.Cyan("\n✅ Smoke test finished")
}
