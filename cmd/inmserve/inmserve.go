// inmserve is an HTTP front end to the exporter; POST a JSON list of tracks, get back a zip
// of DBF files (or a PDF, or a listing).
package main

import(
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	ilog "github.com/skypies/inmtrack/log"
)

var(
	fPort int
	fAirport string
	fCacheSize int
	fLogFile string
	fLogLevel string
)

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" { return v }
	return def
}

func init() {
	port,_ := strconv.Atoi(envOr("PORT", "8080"))
	flag.IntVar(&fPort, "port", port, "port to listen on ($PORT)")
	flag.StringVar(&fAirport, "airport", envOr("INMTRACK_AIRPORT", ""),
		"default airport, if requests don't name one ($INMTRACK_AIRPORT)")
	flag.IntVar(&fCacheSize, "cache", 64, "how many recent exports to keep")
	flag.StringVar(&fLogFile, "log", "", "log to this file (default stderr)")
	flag.StringVar(&fLogLevel, "loglevel", "info", "debug, info, warn or error")
}

func main() {
	flag.Parse()
	l := ilog.New(fLogLevel, fLogFile)

	s := NewServer(fAirport, fCacheSize, l)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)
	router.Mount("/", s.Routes())

	addr := ":" + strconv.Itoa(fPort)
	l.Info("listening", "addr", addr, "airport", fAirport)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
