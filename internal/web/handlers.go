package web

import (
	"errors"
	"io"
	"net/http"

	"dupesift/internal/core"
	"dupesift/internal/logging"
	"dupesift/internal/web/templates"
)

// handleIndex renders the upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Index().Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

// handleUpload accepts a multipart CSV upload, partitions it into original
// and duplicate rows, stores the duplicate subset in the session's export
// buffer, and renders the results page.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize

	// Cap the whole request body; the slack covers multipart framing so a
	// file exactly at the limit still parses.
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+64*1024)

	file, header, err := s.formFile(r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		err = sizeErrorOr(err, maxSize)
		s.respondError(w, r, err, statusFor(err))
		return
	}

	if err := core.CheckSize(int64(len(data)), maxSize); err != nil {
		s.respondError(w, r, err, http.StatusRequestEntityTooLarge)
		return
	}

	table, err := core.Load(data)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	result := core.Partition(table)

	sid := sessionIDFrom(r.Context())
	if result.HasDuplicates() {
		s.sessions.SetExport(sid, string(core.Serialize(result.Duplicates)))
	} else {
		s.sessions.ClearExport(sid)
	}

	logger := logging.WithFields(r.Context(),
		"file", header.Filename,
		"rows", result.Original.NumRows(),
		"duplicates", result.Count,
	)
	logger.Info("upload processed")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Results(toResultsParams(header.Filename, result)).Render(r.Context(), w); err != nil {
		logger.Error("render results", "error", err)
	}
}

// handleDownloadDuplicates streams the session's export buffer as a CSV
// attachment. Responds 400 when the session holds no duplicates, whether
// because nothing was uploaded yet, the last upload was duplicate-free, or
// the session expired.
func (s *Server) handleDownloadDuplicates(w http.ResponseWriter, r *http.Request) {
	sid := sessionIDFrom(r.Context())

	csvData, ok := s.sessions.Export(sid)
	if !ok {
		s.respondError(w, r, core.ErrNoDuplicates, http.StatusBadRequest)
		return
	}

	writeAttachment(w, "duplicates.csv")
	if _, err := io.WriteString(w, csvData); err != nil {
		logging.FromContext(r.Context()).Error("write download", "error", err)
	}
}

// formFile extracts the uploaded file from the multipart form, normalizing
// the various "nothing was uploaded" shapes into ErrNoFile and body size
// overruns into SizeLimitError.
func (s *Server) formFile(r *http.Request) (io.ReadCloser, *multipartHeader, error) {
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
		return nil, nil, sizeErrorOr(err, s.cfg.Upload.MaxFileSize)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, core.ErrNoFile
	}
	if header.Filename == "" {
		file.Close()
		return nil, nil, core.ErrNoFile
	}

	return file, &multipartHeader{Filename: header.Filename, Size: header.Size}, nil
}

// multipartHeader carries the upload metadata handlers care about.
type multipartHeader struct {
	Filename string
	Size     int64
}

// sizeErrorOr converts a MaxBytesReader overrun into a SizeLimitError so it
// maps to the file-too-large user message; other errors pass through as a
// parse failure.
func sizeErrorOr(err error, max int64) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &core.SizeLimitError{Size: maxErr.Limit, Max: max}
	}
	return &core.ParseError{Err: err}
}

// statusFor picks the HTTP status for an upload error.
func statusFor(err error) int {
	var sizeErr *core.SizeLimitError
	if errors.As(err, &sizeErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// toResultsParams flattens a partition result into template inputs.
func toResultsParams(filename string, result core.Result) templates.ResultsParams {
	return templates.ResultsParams{
		FileName:       filename,
		Columns:        result.Original.Columns,
		OriginalRows:   result.Original.Cells(),
		DuplicateRows:  result.Duplicates.Cells(),
		HasDuplicates:  result.HasDuplicates(),
		DuplicateCount: result.Count,
	}
}
