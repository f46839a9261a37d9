// inmtrack exports a JSON list of hand-drawn tracks as INM track files.
//
//  inmtrack -in tracks.json -out ./study -airport HNL -anchor
//  inmtrack -in tracks.json -out gs://inm-exports/hnl -zip -pdf tracks.pdf
//  inmtrack -dump ./study/TRK_SEGS.DBF -v 1
package main

import(
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/dbf"
	"github.com/skypies/inmtrack/export"
	"github.com/skypies/inmtrack/fpdf"
	ilog "github.com/skypies/inmtrack/log"
	"github.com/skypies/inmtrack/ref"
	"github.com/skypies/inmtrack/sink"
)

var(
	ctx = context.Background()
	fVerbosity int
	fIn string
	fOut string
	fAirport string
	fAnchor bool
	fZip bool
	fPdf string
	fLegacy bool
	fBigQuery string
	fDump string
	fLogFile string
	fLogLevel string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fIn, "in", "-", "JSON list of tracks ('-' for stdin)")
	flag.StringVar(&fOut, "out", "", "where to write the files; a directory, or gs://bucket/prefix")
	flag.StringVar(&fAirport, "airport", "", "airport code, for runway ends and RWY_END.DBF (e.g. HNL)")
	flag.BoolVar(&fAnchor, "anchor", false, "start each track at its runway end (needs -airport)")
	flag.BoolVar(&fZip, "zip", false, "write a single zip file, instead of loose DBF files")
	flag.StringVar(&fPdf, "pdf", "", "also write a plan view of the tracks to this filename")
	flag.BoolVar(&fLegacy, "legacy", false, "truncate values that don't fit, instead of failing")
	flag.StringVar(&fBigQuery, "bq", "", "also insert the tracks into this project.dataset.table")
	flag.StringVar(&fDump, "dump", "", "print the contents of a DBF file, and exit")
	flag.StringVar(&fLogFile, "log", "", "log to this file (default stderr)")
	flag.StringVar(&fLogLevel, "loglevel", "info", "debug, info, warn or error")
}

// {{{ loadTracks

func loadTracks(r io.Reader) ([]inmtrack.Track, error) {
	tracks := []inmtrack.Track{}
	if err := json.NewDecoder(r).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("bad track list: %v", err)
	}
	return tracks, nil
}

func openInput(filename string) (io.ReadCloser, error) {
	if filename == "-" { return io.NopCloser(os.Stdin), nil }
	return os.Open(filename)
}

// }}}
// {{{ dumpDBF

func dumpDBF(w io.Writer, b []byte, verbosity int) error {
	f,err := dbf.Decode(b)
	if err != nil {
		return err
	}

	fmt.Fprint(w, f)
	if verbosity < 1 {
		return nil
	}

	for i,r := range f.Records {
		mark := " "
		if r.Deleted { mark = "*" }
		fmt.Fprintf(w, "[%3d]%s %s\n", i, mark, strings.Join(r.Values, " | "))
	}
	return nil
}

// }}}
// {{{ run

func run(l *ilog.Logger) error {
	e := export.Exporter{
		Encoder: dbf.Encoder{LegacyOverflow: fLegacy},
		AnchorToRunway: fAnchor,
		Log: l,
	}
	if fAirport != "" {
		a,err := ref.Lookup(fAirport)
		if err != nil { return err }
		e.Airport = a
	}

	in,err := openInput(fIn)
	if err != nil { return err }
	defer in.Close()
	tracks,err := loadTracks(in)
	if err != nil { return err }

	bundle,err := e.Export(tracks)
	if err != nil { return err }

	if fVerbosity > 0 {
		fmt.Print(bundle.Listing())
	}

	if fOut != "" {
		s,err := sink.Open(ctx, fOut)
		if err != nil { return err }
		if c,ok := s.(io.Closer); ok { defer c.Close() }

		if err := export.Publish(ctx, s, bundle, fZip); err != nil { return err }

		if fPdf != "" {
			var buf bytes.Buffer
			prepared := []inmtrack.Track{}
			for _,t := range bundle.Tracks { prepared = append(prepared, t.Track) }
			if err := fpdf.WriteTracks(&buf, prepared, e.Airport); err != nil { return err }
			if err := s.Put(ctx, fPdf, buf.Bytes(), "application/pdf"); err != nil { return err }
		}
		l.Info("published", "dest", fOut, "files", len(bundle.Files))
	}

	if fBigQuery != "" {
		p,err := export.NewBigQueryPublisher(ctx, fBigQuery)
		if err != nil { return err }
		defer p.Close()
		if err := p.Publish(ctx, bundle); err != nil { return err }
		l.Info("inserted into bigquery", "table", fBigQuery, "tracks", len(bundle.Tracks))
	}

	return nil
}

// }}}

func main() {
	flag.Parse()
	l := ilog.New(fLogLevel, fLogFile)

	if fDump != "" {
		b,err := os.ReadFile(fDump)
		if err != nil { log.Fatal(err) }
		if err := dumpDBF(os.Stdout, b, fVerbosity); err != nil {
			log.Fatalf("%s: %v\n", fDump, err)
		}
		return
	}

	if fOut == "" && fBigQuery == "" && fVerbosity == 0 {
		log.Fatal("nothing to do; need at least one of -out, -bq, -v\n")
	}
	if fPdf != "" && fOut == "" {
		log.Fatal("-pdf needs -out\n")
	}

	if err := run(l); err != nil {
		l.Error("export failed", "err", err)
		log.Fatal(err)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
