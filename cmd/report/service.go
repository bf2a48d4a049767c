package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines persistence operations for saved reports.
type Service interface {
	List() ([]Report, error)
	Get(id string) (Report, error)
	Create(r Report) (Report, error)
}

var _ Service = (*fileService)(nil)

// fileService stores each report as a JSON file under baseDir.
type fileService struct {
	baseDir string
}

// NewFileService creates a report service rooted at dir (created if missing).
func NewFileService(dir string) (Service, error) {
	if dir == "" {
		return nil, errors.New("empty reports dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileService{baseDir: dir}, nil
}

func (s *fileService) reportPath(id string) string { return filepath.Join(s.baseDir, id+".json") }

// List loads all report files (best-effort; skips corrupt ones), newest first.
func (s *fileService) List() ([]Report, error) {
	dir, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	var files []fs.FileInfo
	for _, de := range dir {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil { // skip
			continue
		}
		files = append(files, info)
	}

	var reports []Report
	for _, fi := range files {
		b, err := os.ReadFile(filepath.Join(s.baseDir, fi.Name()))
		if err != nil {
			continue
		}
		var r Report
		if err := json.Unmarshal(b, &r); err != nil || r.ID == "" {
			continue
		}
		if r.CreatedAt.IsZero() { // backfill from file mtime
			r.CreatedAt = fi.ModTime().UTC()
		}
		reports = append(reports, r)
	}
	sort.SliceStable(reports, func(i, j int) bool { return reports[i].CreatedAt.After(reports[j].CreatedAt) })
	return reports, nil
}

func (s *fileService) Get(id string) (Report, error) {
	if id == "" {
		return Report{}, errors.New("empty id")
	}
	b, err := os.ReadFile(s.reportPath(id))
	if err != nil {
		return Report{}, err
	}
	var r Report
	if err := json.Unmarshal(b, &r); err != nil {
		return Report{}, err
	}
	if r.ID == "" {
		return Report{}, errors.New("report missing id")
	}
	return r, nil
}

func (s *fileService) Create(r Report) (Report, error) {
	if strings.TrimSpace(r.Kind) == "" {
		return Report{}, errors.New("kind required")
	}
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return Report{}, err
	}
	tmp := s.reportPath(r.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return Report{}, err
	}
	if err := os.Rename(tmp, s.reportPath(r.ID)); err != nil {
		return Report{}, err
	}
	return r, nil
}
