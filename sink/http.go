package sink

import(
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var ErrAlreadySent = errors.New("sink: response already sent")

// HTTPSink sends a single file back as a download. A second Put fails, since the response has
// already gone.
type HTTPSink struct {
	W     http.ResponseWriter
	sent  bool
}

func NewHTTPSink(w http.ResponseWriter) *HTTPSink { return &HTTPSink{W:w} }

func (hs *HTTPSink)Put(ctx context.Context, filename string, data []byte, mimeType string) error {
	if err := checkFilename(filename); err != nil { return err }
	if hs.sent { return ErrAlreadySent }
	hs.sent = true

	if mimeType == "" { mimeType = "application/octet-stream" }
	hs.W.Header().Set("Content-Type", mimeType)
	hs.W.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	hs.W.Header().Set("Content-Length", strconv.Itoa(len(data)))
	hs.W.WriteHeader(http.StatusOK)
	_,err := hs.W.Write(data)
	return err
}
