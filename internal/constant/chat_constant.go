package constant

const (
	// DefaultDocumentName labels a record whose engine response and upload
	// carried no usable name.
	DefaultDocumentName = "Legal Document"

	// NoDocumentWarning is appended as an assistant message when the user
	// asks a question before any document has been analyzed.
	NoDocumentWarning = "Please upload a document before asking questions."

	// NoAnswerFallback replaces an empty answer from the QA engine.
	NoAnswerFallback = "No response from AI."

	// ConnectivityFailure is appended when the QA round trip fails.
	ConnectivityFailure = "Unable to connect to the backend. Please try again."
)
