package httpclient

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

const uploadFieldName = "file"

var errIsDirectory = errors.New("is a directory")

// fileUpload streams one local file as a multipart/form-data body.
type fileUpload struct {
	fieldName   string
	fileName    string
	contentType string
	file        *os.File
}

// openFileUpload opens path for upload. The file is closed once the body
// has been streamed or abandoned.
func openFileUpload(path string) (*fileUpload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewIOError(err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, NewIOError(err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, NewIOError(&os.PathError{Op: "upload", Path: path, Err: errIsDirectory})
	}
	return &fileUpload{
		fieldName:   uploadFieldName,
		fileName:    filepath.Base(path),
		contentType: contentTypeBinary,
		file:        f,
	}, nil
}

// stream returns a reader producing the multipart body, its content type,
// and a wait function that aborts any unread remainder and blocks until the
// file is closed. wait must be called exactly once.
func (u *fileUpload) stream() (io.Reader, string, func()) {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)
	contentType := w.FormDataContentType()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { _ = u.file.Close() }()
		_ = pw.CloseWithError(u.writeTo(w))
	}()

	return pr, contentType, func() {
		_ = pr.Close()
		<-done
	}
}

func (u *fileUpload) writeTo(w *multipart.Writer) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(u.fieldName)+`"; filename="`+escapeQuotes(u.fileName)+`"`)
	header.Set("Content-Type", u.contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, u.file); err != nil {
		return err
	}
	return w.Close()
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
