package agent

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// FileRef describes one attachment on an agent node. PreviewURI may own a
// transient preview resource; whoever removes the entry must release it.
type FileRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
	PreviewURI string `json:"preview_uri,omitempty"`
}

// NewFileRef builds a FileRef for uploaded content, sniffing the MIME type
// from the data rather than trusting the file name.
func NewFileRef(name string, data []byte) FileRef {
	return FileRef{
		ID:        uuid.NewString(),
		Name:      name,
		MimeType:  mimetype.Detect(data).String(),
		SizeBytes: int64(len(data)),
	}
}

// AttachFile appends the file to the instance's attachment list.
func (a *Instance) AttachFile(f FileRef) {
	a.Files = append(a.Files, f)
}

// RemoveFile removes the file with the given ID and returns it so the caller
// can release its preview resource. The second return is false when no such
// file exists.
func (a *Instance) RemoveFile(id string) (FileRef, bool) {
	for i, f := range a.Files {
		if f.ID == id {
			a.Files = append(a.Files[:i], a.Files[i+1:]...)
			return f, true
		}
	}
	return FileRef{}, false
}
