package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"lbxoverlap/internal/archive"
	"lbxoverlap/internal/discovery"
	"lbxoverlap/internal/errs"
	"lbxoverlap/internal/logging"
	"lbxoverlap/internal/overlap"
)

const (
	fieldFirst  = "export1"
	fieldSecond = "export2"

	msgMissingUpload = "Upload two Letterboxd export zip files (export1 and export2)."
	msgNoRootFirst   = "First zip does not contain a valid Letterboxd export (no watched.csv)."
	msgNoRootSecond  = "Second zip does not contain a valid Letterboxd export (no watched.csv)."
	msgTooLarge      = "upload too large"

	multipartMemory = 32 << 20
	formOverhead    = 1 << 20
)

// requestError is a failure the client caused. Its message is returned as is.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(message string) error {
	return &requestError{status: http.StatusBadRequest, message: message}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	logger := logging.WithContext(r.Context(), s.logger)

	first, second, err := s.readUploads(w, r)
	if err == nil {
		var payload overlap.Payload
		payload, err = s.analyze(r.Context(), first, second)
		if err == nil {
			s.writeJSON(w, r, http.StatusOK, payload)
			return
		}
	}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		logger.Info("analyze rejected", logging.String("reason", reqErr.message))
		s.writeError(w, r, reqErr.status, reqErr.message)
		return
	}
	logger.Error("analyze failed", logging.Error(err))
	s.writeError(w, r, http.StatusInternalServerError, err.Error())
}

// readUploads returns the raw bytes of both archives. Each file is bounded by
// the configured upload limit.
func (s *Server) readUploads(w http.ResponseWriter, r *http.Request) ([]byte, []byte, error) {
	limit := s.cfg.MaxUploadBytes()
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, 2*limit+formOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, badRequest(msgTooLarge)
		}
		return nil, nil, badRequest(msgMissingUpload)
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	firstFile, firstHeader, errFirst := r.FormFile(fieldFirst)
	secondFile, secondHeader, errSecond := r.FormFile(fieldSecond)
	for _, f := range []multipart.File{firstFile, secondFile} {
		if f != nil {
			defer f.Close()
		}
	}
	if errFirst != nil || errSecond != nil {
		return nil, nil, badRequest(msgMissingUpload)
	}
	if limit > 0 && (firstHeader.Size > limit || secondHeader.Size > limit) {
		return nil, nil, badRequest(msgTooLarge)
	}

	first, err := io.ReadAll(firstFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", fieldFirst, err)
	}
	second, err := io.ReadAll(secondFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", fieldSecond, err)
	}
	return first, second, nil
}

// analyze unpacks both archives into a fresh scratch directory and compares
// the exports found inside. The scratch directory never outlives the call.
func (s *Server) analyze(ctx context.Context, first, second []byte) (overlap.Payload, error) {
	logger := logging.WithContext(ctx, s.logger)

	tag, _ := logging.RequestIDFromContext(ctx)
	scratch, err := os.MkdirTemp(s.cfg.Paths.ScratchDir, scratchPattern(tag))
	if err != nil {
		return overlap.Payload{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			logger.Warn("failed to remove scratch dir", logging.String("path", scratch), logging.Error(err))
		}
	}()

	dirFirst := filepath.Join(scratch, "1")
	dirSecond := filepath.Join(scratch, "2")
	opts := archive.Options{MaxExtractedBytes: archive.DefaultMaxExtractedBytes}
	for _, item := range []struct {
		data []byte
		dest string
	}{{first, dirFirst}, {second, dirSecond}} {
		stats, err := archive.ExtractBytes(item.data, item.dest, opts)
		if err != nil {
			if errors.Is(err, errs.ErrTooLarge) {
				return overlap.Payload{}, badRequest(msgTooLarge)
			}
			return overlap.Payload{}, err
		}
		logger.Debug("archive extracted",
			logging.String("dest", item.dest),
			logging.Int("files", stats.Files),
			logging.Int64("bytes", stats.Bytes),
		)
	}

	rootFirst, err := discovery.FindExportRoot(dirFirst)
	if err != nil {
		return overlap.Payload{}, rootError(err, msgNoRootFirst)
	}
	rootSecond, err := discovery.FindExportRoot(dirSecond)
	if err != nil {
		return overlap.Payload{}, rootError(err, msgNoRootSecond)
	}

	result, a, b, err := overlap.CompareDirs(rootFirst, rootSecond)
	if err != nil {
		return overlap.Payload{}, err
	}
	for _, src := range []overlap.Source{a, b} {
		logger.Debug("export loaded",
			logging.String(logging.FieldSource, src.Dir),
			logging.String("name", src.Name),
			logging.Int("watched", len(src.Watched)),
			logging.Int("watched_dropped", src.WatchedStats.DroppedTotal()),
			logging.Int("watchlist", len(src.Watchlist)),
			logging.Int("watchlist_dropped", src.WatchlistStats.DroppedTotal()),
		)
	}
	logger.Info("analyze complete",
		logging.Int("watched_both", len(result.WatchedBoth)),
		logging.Int("watchlist_both", len(result.WatchlistBoth)),
	)
	return result.Payload(), nil
}

func rootError(err error, message string) error {
	if errors.Is(err, errs.ErrNotFound) {
		return badRequest(message)
	}
	return err
}

func scratchPattern(tag string) string {
	if len(tag) > 8 {
		tag = tag[:8]
	}
	if tag == "" {
		return "letterboxd-*"
	}
	return "letterboxd-" + tag + "-*"
}
