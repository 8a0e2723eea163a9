package account

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edurift/levelmap-server/internal/domain"
)

// Catalog holds the static course catalog. Content lives in a JSON config
// file, not in code; when no file is present the built-in seed entry is
// served so the frontend integration keeps working out of the box.
type Catalog struct {
	courses []domain.Course
}

// defaultCourses is the seed catalog shipped with the service.
var defaultCourses = []domain.Course{
	{
		ID:       "lvl_01",
		Title:    "Training Zone",
		VideoURL: "http://mysite.com/intro.mp4",
	},
}

// LoadCatalog reads the course catalog from path. A missing file falls back
// to the seed catalog; a malformed file is an error.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{courses: defaultCourses}, nil
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return &Catalog{courses: courses}, nil
}

// Courses returns a copy of the catalog entries.
func (c *Catalog) Courses() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	copy(out, c.courses)
	return out
}
