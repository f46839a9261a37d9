// Package sink is where exported files end up: a local directory, a GCS bucket, or an HTTP
// response.
package sink

import(
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
)

var ErrBadFilename = errors.New("sink: bad filename")

// A Sink accepts named files.
type Sink interface {
	Put(ctx context.Context, filename string, data []byte, mimeType string) error
}

// Filenames are flat; no directories, no escaping upwards.
func checkFilename(filename string) error {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("%w %q", ErrBadFilename, filename)
	}
	return nil
}

// {{{ ParseGCSURL, Open

// ParseGCSURL splits gs://bucket/some/prefix into its bucket and prefix.
func ParseGCSURL(dest string) (bucket, prefix string, ok bool) {
	if !strings.HasPrefix(dest, "gs://") { return "", "", false }
	rest := strings.TrimPrefix(dest, "gs://")
	bucket,prefix,_ = strings.Cut(rest, "/")
	if bucket == "" { return "", "", false }
	return bucket, strings.Trim(prefix, "/"), true
}

// Open returns a GCSSink for gs:// destinations, and a DirSink for everything else. GCS sinks
// should be closed when done with.
func Open(ctx context.Context, dest string) (Sink, error) {
	if dest == "" {
		return nil, errors.New("sink: no destination")
	}

	if bucket,prefix,ok := ParseGCSURL(dest); ok {
		client,err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("sink: GCS client: %v", err)
		}
		return &GCSSink{Client:client, Bucket:bucket, Prefix:prefix}, nil
	} else if strings.HasPrefix(dest, "gs://") {
		return nil, fmt.Errorf("sink: bad GCS url %q", dest)
	}

	return DirSink{Dir:dest}, nil
}

// }}}

// {{{ DirSink

// DirSink writes files into a local directory, creating it if needed.
type DirSink struct {
	Dir string
}

func (ds DirSink)Put(ctx context.Context, filename string, data []byte, mimeType string) error {
	if err := checkFilename(filename); err != nil { return err }
	if err := os.MkdirAll(ds.Dir, 0755); err != nil { return err }
	return os.WriteFile(filepath.Join(ds.Dir, filename), data, 0644)
}

func (ds DirSink)String() string { return "dir:" + ds.Dir }

// }}}
// {{{ MemSink

// MemSink keeps files in memory.
type MemSink struct {
	sync.Mutex
	Files      map[string][]byte
	MimeTypes  map[string]string
}

func NewMemSink() *MemSink {
	return &MemSink{Files:map[string][]byte{}, MimeTypes:map[string]string{}}
}

func (ms *MemSink)Put(ctx context.Context, filename string, data []byte, mimeType string) error {
	if err := checkFilename(filename); err != nil { return err }
	ms.Lock()
	defer ms.Unlock()
	ms.Files[filename] = append([]byte{}, data...)
	ms.MimeTypes[filename] = mimeType
	return nil
}

func (ms *MemSink)Filenames() []string {
	ms.Lock()
	defer ms.Unlock()
	ret := []string{}
	for k,_ := range ms.Files {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
