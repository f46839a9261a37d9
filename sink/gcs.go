package sink

import(
	"context"
	"fmt"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSSink writes objects into a Google Cloud Storage bucket, under an optional prefix.
type GCSSink struct {
	Client  *storage.Client
	Bucket   string
	Prefix   string
}

func (gs *GCSSink)String() string { return fmt.Sprintf("gs://%s/%s", gs.Bucket, gs.Prefix) }

func (gs *GCSSink)objectName(filename string) string {
	if gs.Prefix == "" { return filename }
	return path.Join(gs.Prefix, filename)
}

func (gs *GCSSink)Put(ctx context.Context, filename string, data []byte, mimeType string) error {
	if err := checkFilename(filename); err != nil { return err }

	name := gs.objectName(filename)
	w := gs.Client.Bucket(gs.Bucket).Object(name).NewWriter(ctx)
	w.ContentType = mimeType

	if _,err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("GCS-Write [gs://%s]%s: %v", gs.Bucket, name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("GCS-Close [gs://%s]%s: %v", gs.Bucket, name, err)
	}
	return nil
}

// List returns the names of the objects under the prefix, relative to it, with their sizes.
func (gs *GCSSink)List(ctx context.Context) (map[string]int64, error) {
	q := &storage.Query{Prefix: gs.objectName("")}
	if q.Prefix != "" && !strings.HasSuffix(q.Prefix, "/") {
		q.Prefix += "/"
	}

	ret := map[string]int64{}
	it := gs.Client.Bucket(gs.Bucket).Objects(ctx, q)
	for {
		oa,err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, fmt.Errorf("GCS-Readdir [gs://%s]%s: %v", gs.Bucket, q.Prefix, err)
		}
		if name := strings.TrimPrefix(oa.Name, q.Prefix); name != "" {
			ret[name] = oa.Size
		}
	}

	return ret, nil
}

func (gs *GCSSink)Close() error { return gs.Client.Close() }
