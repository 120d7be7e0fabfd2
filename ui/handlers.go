package ui

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"secview/adapters/excel"
	"secview/domain/school"
	"secview/internal/sheet"
)

// indexView is the data for the upload page.
type indexView struct {
	Error string
}

// sheetView is the data for one sheet's page.
type sheetView struct {
	Sheet sheet.Sheet
	Table tableView
}

// tableView is the data behind the rows fragment.
type tableView struct {
	SheetID string
	Columns []string
	Rows    []school.Row
	Shown   int
	Total   int
	Query   string
	Summary school.Summary
}

// handleIndex renders the initial empty state: no file, no rows, no error.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, "index.html", indexView{})
}

// handleUpload accepts the multipart upload and registers the sheet. The
// parse runs asynchronously; the client is redirected to the sheet page,
// which polls until the parse settles.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Upload.MaxBytes)

	if err := r.ParseMultipartForm(a.cfg.Upload.MaxBytes); err != nil {
		log.Printf("[Upload] Rejected: %v", err)
		a.renderIndexError(w, "The file could not be accepted. It may exceed the upload size limit.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.renderIndexError(w, "No file was selected.")
		return
	}
	defer file.Close()

	if !excel.SupportedExtension(header.Filename) {
		log.Printf("[Upload] Rejected unsupported file: %s", header.Filename)
		a.renderIndexError(w, "Only .xlsx and .csv files are accepted.")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[Upload] Read failed for %s: %v", header.Filename, err)
		a.renderIndexError(w, "Failed to read the uploaded file. Please select it again.")
		return
	}

	id := a.store.Create(header.Filename, content)
	http.Redirect(w, r, "/sheets/"+id, http.StatusSeeOther)
}

// handleSheet renders a sheet page in whichever state it is in.
func (a *App) handleSheet(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.store.Get(chi.URLParam(r, "id"))
	if !ok {
		// Stale or cleared sheet: back to the initial empty state.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	view := sheetView{Sheet: snap}
	if snap.Status == sheet.StatusReady {
		view.Table = tableView{
			SheetID: snap.ID,
			Columns: school.RequiredColumns(),
			Rows:    snap.Rows,
			Shown:   len(snap.Rows),
			Total:   len(snap.Rows),
			Summary: snap.Summary,
		}
	}

	a.renderTemplate(w, "sheet.html", view)
}

// handleSheetStatus is the HTMX polling endpoint used while a sheet is
// loading. Once the parse settles the client is redirected back to the
// sheet page, which then renders the table or the error panel.
func (a *App) handleSheetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := a.store.Get(id)
	if !ok {
		w.Header().Set("HX-Redirect", "/")
		return
	}

	if snap.Status != sheet.StatusLoading {
		w.Header().Set("HX-Redirect", "/sheets/"+id)
		return
	}

	a.renderTemplate(w, "status.html", snap)
}

// handleSheetRows recomputes the visible subset for the current query and
// returns the table fragment.
func (a *App) handleSheetRows(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.store.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "sheet not found", http.StatusNotFound)
		return
	}
	if snap.Status != sheet.StatusReady {
		http.Error(w, "sheet is not ready", http.StatusConflict)
		return
	}

	query := r.URL.Query().Get("q")
	filtered := sheet.Filter(snap.Rows, query)

	a.renderTemplate(w, "rows.html", tableView{
		SheetID: snap.ID,
		Columns: school.RequiredColumns(),
		Rows:    filtered,
		Shown:   len(filtered),
		Total:   len(snap.Rows),
		Query:   query,
		Summary: snap.Summary,
	})
}

// handleSheetDelete clears the upload and returns to the initial state.
func (a *App) handleSheetDelete(w http.ResponseWriter, r *http.Request) {
	a.store.Delete(chi.URLParam(r, "id"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) renderIndexError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusBadRequest)
	a.renderTemplate(w, "index.html", indexView{Error: message})
}
