package main

import(
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/skypies/util/widget"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/dbf"
	"github.com/skypies/inmtrack/export"
	"github.com/skypies/inmtrack/fpdf"
	ilog "github.com/skypies/inmtrack/log"
	"github.com/skypies/inmtrack/ref"
	"github.com/skypies/inmtrack/sink"
)

const(
	KMaxRequestBytes = 8 << 20
	KCacheTTL = 30 * time.Minute
)

// Server builds exports on demand. Recent bundles are cached, since people tend to download the
// same tracks in a few different formats.
type Server struct {
	DefaultAirport  string
	Log            *ilog.Logger
	cache          *expirable.LRU[string, *export.Bundle]
}

func NewServer(airport string, cacheSize int, l *ilog.Logger) *Server {
	return &Server{
		DefaultAirport: airport,
		Log: l,
		cache: expirable.NewLRU[string, *export.Bundle](cacheSize, nil, KCacheTTL),
	}
}

func (s *Server)Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/health", s.healthHandler)
	r.Get("/api/airports/{code}/runways", s.runwaysHandler)
	r.Post("/api/export", s.exportHandler)
	return r
}

// {{{ writeJSON, writeError

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server)writeError(w http.ResponseWriter, status int, err error) {
	s.Log.Warn("request failed", "status", status, "err", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// errorStatus sorts errors into the user's fault, and ours.
func errorStatus(err error) int {
	var overflowErr *dbf.CellOverflowError

	switch {
	case errors.Is(err, ref.ErrUnknownAirport): return http.StatusNotFound
	case errors.Is(err, ref.ErrUnknownRunway):  return http.StatusBadRequest
	case errors.Is(err, export.ErrNoTracks):    return http.StatusBadRequest
	case errors.Is(err, fpdf.ErrNothingToDraw): return http.StatusBadRequest
	case errors.As(err, &overflowErr):          return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// }}}

// {{{ s.healthHandler, s.runwaysHandler

func (s *Server)healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type runwayJSON struct {
	Id         string
	X,Y        float64
	Elevation  float64
	Lat,Long   float64
}

func (s *Server)runwaysHandler(w http.ResponseWriter, r *http.Request) {
	a,err := ref.Lookup(chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, errorStatus(err), err)
		return
	}

	ret := []runwayJSON{}
	for _,rwy := range a.Runways {
		pos,_ := a.RunwayAnchor(rwy.Id)
		ret = append(ret, runwayJSON{rwy.Id, rwy.X, rwy.Y, rwy.Elevation, pos.Lat, pos.Long})
	}
	writeJSON(w, http.StatusOK, ret)
}

// }}}
// {{{ s.exportHandler

// POST /api/export?airport=HNL&anchor=on&legacy=on&format=zip
//   body: JSON list of tracks
//   format: zip (default), pdf, listing, csv
func (s *Server)exportHandler(w http.ResponseWriter, r *http.Request) {
	body,err := io.ReadAll(http.MaxBytesReader(w, r.Body, KMaxRequestBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	tracks := []inmtrack.Track{}
	if err := json.Unmarshal(body, &tracks); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("bad track list: %v", err))
		return
	}

	e := export.Exporter{
		Encoder: dbf.Encoder{LegacyOverflow: widget.FormValueCheckbox(r, "legacy")},
		AnchorToRunway: widget.FormValueCheckbox(r, "anchor"),
		Log: s.Log,
	}

	airport := r.FormValue("airport")
	if airport == "" { airport = s.DefaultAirport }
	if airport != "" {
		a,err := ref.Lookup(airport)
		if err != nil {
			s.writeError(w, errorStatus(err), err)
			return
		}
		e.Airport = a
	}

	key := cacheKey(body, airport, e.AnchorToRunway, e.Encoder.LegacyOverflow)
	bundle,hit := s.cache.Get(key)
	if !hit {
		if bundle,err = e.Export(tracks); err != nil {
			s.writeError(w, errorStatus(err), err)
			return
		}
		s.cache.Add(key, bundle)
	}
	w.Header().Set("X-Cache-Hit", fmt.Sprintf("%v", hit))

	ctx := r.Context()
	switch format := r.FormValue("format"); format {
	case "", "zip":
		err = export.Publish(ctx, sink.NewHTTPSink(w), bundle, true)

	case "pdf":
		var buf bytes.Buffer
		prepared := []inmtrack.Track{}
		for _,t := range bundle.Tracks { prepared = append(prepared, t.Track) }
		if err := fpdf.WriteTracks(&buf, prepared, e.Airport); err != nil {
			s.writeError(w, errorStatus(err), err)
			return
		}
		err = sink.NewHTTPSink(w).Put(ctx, "tracks.pdf", buf.Bytes(), "application/pdf")

	case "listing":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_,err = w.Write([]byte(bundle.Listing()))

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		err = bundle.WriteCSV(w)

	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("format %q not known", format))
		return
	}

	if err != nil {
		s.Log.Error("writing response", "err", err)
	}
}

func cacheKey(body []byte, airport string, anchor, legacy bool) string {
	h := sha256.New()
	h.Write(body)
	fmt.Fprintf(h, "|%s|%v|%v", airport, anchor, legacy)
	return hex.EncodeToString(h.Sum(nil))
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
