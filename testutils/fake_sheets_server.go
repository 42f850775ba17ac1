package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sheetdata
var sheetdata embed.FS

// Values recognized by the fake server. Requests for any other
// spreadsheet get a 404, mirroring the real Sheets API.
const (
	TestSpreadsheetID = "test-spreadsheet"
	TestAPIKey        = "test-key"
	TestRange         = "2025Matchups!A1:M"
)

type FakeSheetsServer struct {
	s *httptest.Server
}

func NewFakeSheetsServer() *FakeSheetsServer {
	r := chi.NewRouter()
	r.Route("/v4/spreadsheets", func(r chi.Router) {
		r.Get("/{spreadsheetID}/values/{sheetRange}", sheetValuesHandler)
	})

	return &FakeSheetsServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSheetsServer) Close() {
	f.s.Close()
}

func (f *FakeSheetsServer) URL() string {
	return f.s.URL
}

func sheetValuesHandler(w http.ResponseWriter, r *http.Request) {
	spreadsheetID := chi.URLParam(r, "spreadsheetID")
	if spreadsheetID != TestSpreadsheetID {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404, "status": "NOT_FOUND"}}`))
		return
	}

	serveFile(w, "matchups.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sheetdata.ReadFile(fmt.Sprintf("sheetdata/%s", name))
	if err != nil {
		log.Printf("error reading sheetdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
