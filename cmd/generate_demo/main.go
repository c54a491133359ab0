// Command generate_demo writes a sample z database built from real directories
// under a root, for trying out `jumpdb import`.
// Usage: go run ./cmd/generate_demo [-root /usr] [-depth 2] [-out demo.z] [-malformed]
package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/jumpdb/internal/entities"
	"github.com/mrlokans/jumpdb/internal/exporters"
)

const defaultDemoOutputPath = "./demo/demo.z"

// malformedLines exercise every per-line failure of the importer.
var malformedLines = []string{
	"onlytwo|fields",
	"/tmp|notanumber|1700000000",
	"/tmp|1.0|yesterday",
	"/definitely/not/a/real/directory|3|1700000000",
}

func main() {
	root := flag.String("root", "/usr", "directory to walk for sample paths")
	depth := flag.Int("depth", 2, "maximum depth below root")
	limit := flag.Int("limit", 200, "maximum number of directories")
	out := flag.String("out", defaultDemoOutputPath, "path of the generated z database")
	malformed := flag.Bool("malformed", false, "append lines the importer must skip")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	now := time.Now().Unix()

	paths, err := collectDirectories(*root, *depth, *limit)
	if err != nil {
		log.Fatalf("Failed to walk %s: %v", *root, err)
	}

	dirs := make([]entities.Directory, 0, len(paths))
	for _, p := range paths {
		dirs = append(dirs, entities.Directory{
			Path:         p,
			Rank:         float64(rng.Intn(400)+1) / 4,
			LastAccessed: now - rng.Int63n(90*24*3600),
		})
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer file.Close()

	result, err := exporters.NewZExporter().Export(file, dirs)
	if err != nil {
		log.Fatalf("Failed to write demo database: %v", err)
	}

	if *malformed {
		if _, err := file.WriteString(strings.Join(malformedLines, "\n") + "\n"); err != nil {
			log.Fatalf("Failed to write malformed lines: %v", err)
		}
	}

	log.Printf("Wrote %d directories to %s", result.DirectoriesExported, *out)
}

// collectDirectories returns up to limit directories at most depth levels
// below root, skipping ones it cannot read.
func collectDirectories(root string, depth, limit int) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	baseDepth := strings.Count(root, string(filepath.Separator))

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.Count(path, string(filepath.Separator))-baseDepth > depth {
			return fs.SkipDir
		}
		if len(paths) >= limit {
			return fs.SkipAll
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}
