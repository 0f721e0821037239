package har

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/roach88/harcmp/internal/record"
)

// Minimal HAR 1.2 structs, limited to what the pipeline consumes.
type harFile struct {
	Log *harLog `json:"log"`
}

type harLog struct {
	Version string      `json:"version"`
	Entries *[]harEntry `json:"entries"`
}

type harEntry struct {
	StartedDateTime string      `json:"startedDateTime"`
	Time            float64     `json:"time"`
	Request         harRequest  `json:"request"`
	Response        harResponse `json:"response"`
}

type harRequest struct {
	Method   string          `json:"method"`
	URL      string          `json:"url"`
	Headers  []record.Header `json:"headers"`
	PostData *harPostData    `json:"postData"`
}

type harResponse struct {
	Status  int             `json:"status"`
	Headers []record.Header `json:"headers"`
	Content *harContent     `json:"content"`
}

type harPostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

type harContent struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// FormatError reports a capture that could not be structurally read. It is
// the only fatal condition of a comparison; everything below entry level
// degrades instead of failing.
type FormatError struct {
	Path string // empty when parsing from a reader
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("capture format error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("capture format error: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load reads a HAR file from disk and returns its entries in capture order.
func Load(path string) ([]record.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
			return nil, fe
		}
		return nil, &FormatError{Path: path, Err: err}
	}
	return entries, nil
}

// Parse decodes a HAR document from a reader. A document without a
// log.entries list is structurally absent and fails with *FormatError; an
// empty entries list is a valid capture with zero transactions.
func Parse(r io.Reader) ([]record.RawEntry, error) {
	var doc harFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("decode: %w", err)}
	}
	if doc.Log == nil {
		return nil, &FormatError{Err: fmt.Errorf("missing log object")}
	}
	if doc.Log.Entries == nil {
		return nil, &FormatError{Err: fmt.Errorf("missing log.entries list")}
	}

	out := make([]record.RawEntry, 0, len(*doc.Log.Entries))
	for _, e := range *doc.Log.Entries {
		out = append(out, toRawEntry(e))
	}
	return out, nil
}

// toRawEntry maps one HAR entry onto the loader contract. Missing method
// defaults to GET, matching how browsers record navigation entries.
func toRawEntry(e harEntry) record.RawEntry {
	raw := record.RawEntry{
		Method:          e.Request.Method,
		URL:             e.Request.URL,
		Status:          e.Response.Status,
		DurationMs:      e.Time,
		RequestHeaders:  e.Request.Headers,
		ResponseHeaders: e.Response.Headers,
		StartedAt:       e.StartedDateTime,
	}
	if raw.Method == "" {
		raw.Method = "GET"
	}
	if e.Request.PostData != nil {
		raw.RequestBody = e.Request.PostData.Text
		raw.RequestMimeType = e.Request.PostData.MimeType
	}
	if e.Response.Content != nil {
		raw.ResponseBody = e.Response.Content.Text
	}
	return raw
}
