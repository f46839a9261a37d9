package main

import(
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const tTracks = `[
 {"RunwayId":"08R", "Points":[{"Lat":21.305,"Long":-158.02},{"Lat":21.32,"Long":-158.04},{"Lat":21.45,"Long":-158.05}]},
 {"Name":"EAST", "RunwayId":"09", "Points":[{"Lat":0,"Long":0},{"Lat":0,"Long":1}]}
]`

const tHNLTracks = `[
 {"RunwayId":"08R", "Points":[{"Lat":21.305,"Long":-158.02},{"Lat":21.32,"Long":-158.04},{"Lat":21.45,"Long":-158.05}]}
]`

func do(t *testing.T, h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, NewServer("", 4, nil).Routes(), "GET", "/api/health", "")
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRunways(t *testing.T) {
	h := NewServer("", 4, nil).Routes()

	rec := do(t, h, "GET", "/api/airports/phnl/runways", "")
	if rec.Code != 200 {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}
	runways := []runwayJSON{}
	if err := json.Unmarshal(rec.Body.Bytes(), &runways); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(runways) != 8 || runways[0].Id != "04L" || runways[0].Lat == 0 {
		t.Errorf("runways: %v", runways)
	}

	if rec := do(t, h, "GET", "/api/airports/KSFO/runways", ""); rec.Code != http.StatusNotFound {
		t.Errorf("KSFO: expected 404, got %d", rec.Code)
	}
}

func TestExportZip(t *testing.T) {
	h := NewServer("HNL", 4, nil).Routes()

	rec := do(t, h, "POST", "/api/export", tTracks)
	if rec.Code != 200 {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("Content-Type: %s", ct)
	}
	if rec.Header().Get("X-Cache-Hit") != "false" {
		t.Errorf("first request was a cache hit")
	}

	body := rec.Body.Bytes()
	zr,err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	names := []string{}
	for _,f := range zr.File { names = append(names, f.Name) }
	if strings.Join(names, ",") != "TRACK.DBF,TRK_SEGS.DBF,RWY_END.DBF" {
		t.Errorf("zip contains %v", names)
	}

	if rec := do(t, h, "POST", "/api/export?format=listing", tTracks); rec.Header().Get("X-Cache-Hit") != "true" {
		t.Errorf("second request wasn't a cache hit")
	} else if !strings.Contains(rec.Body.String(), "D 09 EAST-0") {
		t.Errorf("listing: %s", rec.Body.String())
	}
}

func TestExportFormats(t *testing.T) {
	h := NewServer("", 4, nil).Routes()

	tests := []struct{
		URL          string
		Body         string
		Status       int
		ContentType  string
	}{
		{"/api/export?format=pdf&airport=HNL&anchor=on", tHNLTracks, 200, "application/pdf"},
		{"/api/export?format=pdf&airport=HNL&anchor=on", tTracks, 400, "application/json"}, // no runway 09
		{"/api/export?format=csv", tTracks, 200, "text/csv"},
		{"/api/export?format=listing&legacy=on", tTracks, 200, "text/plain; charset=utf-8"},
		{"/api/export?format=xls", tTracks, 400, "application/json"},
		{"/api/export", `{"not":"a list"}`, 400, "application/json"},
		{"/api/export", `[]`, 400, "application/json"},
		{"/api/export?airport=SFO", tTracks, 404, "application/json"},
		{"/api/export?airport=HNL&anchor=on", `[{"RunwayId":"27","Points":[{"Lat":21,"Long":-158}]}]`, 400,
			"application/json"},
		{"/api/export", `[{"Name":"TOOLONGNAME","RunwayId":"09","Points":[{"Lat":0,"Long":0},{"Lat":0,"Long":1}]}]`,
			422, "application/json"},
	}

	for _,test := range tests {
		rec := do(t, h, "POST", test.URL, test.Body)
		if rec.Code != test.Status || rec.Header().Get("Content-Type") != test.ContentType {
			t.Errorf("%s %s: expected %d %s, got %d %s (%s)", test.URL, test.Body, test.Status,
				test.ContentType, rec.Code, rec.Header().Get("Content-Type"), rec.Body.String())
		}
	}
}
