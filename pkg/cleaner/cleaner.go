package cleaner

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alzin/sham-al-aqar-syria/internal/storage"
)

// Orphan uploads happen when an image batch is stored but the listing
// insert never follows (aborted batch, abandoned form). They are not
// rolled back per request; this sweep collects them out-of-band.
// Objects younger than a day are skipped so in-flight submissions
// survive.
const minOrphanAge = 24 * time.Hour

func Clean(pool *pgxpool.Pool, bucket storage.BucketI, mediaDir string, bucketName string) {
	referenced := map[string]bool{}

	rows, err := pool.Query(context.Background(), `SELECT images FROM properties`)
	if err != nil {
		log.Printf("ERROR|cleaner.Clean:%s", err.Error())
		return
	}
	for rows.Next() {
		var images []string
		if err := rows.Scan(&images); err != nil {
			log.Printf("ERROR|cleaner.Clean:%s", err.Error())
			continue
		}
		for _, url := range images {
			referenced[url] = true
		}
	}

	avatarRows, err := pool.Query(context.Background(), `SELECT avatar_url FROM profiles WHERE avatar_url <> ''`)
	if err != nil {
		log.Printf("ERROR|cleaner.Clean:%s", err.Error())
		return
	}
	for avatarRows.Next() {
		var url string
		if err := avatarRows.Scan(&url); err != nil {
			log.Printf("ERROR|cleaner.Clean:%s", err.Error())
			continue
		}
		referenced[url] = true
	}

	paths, err := bucket.List()
	if err != nil {
		log.Printf("ERROR|cleaner.Clean:%s", err.Error())
		return
	}
	removed := 0
	for _, path := range paths {
		if isReferenced(bucket, referenced, path) {
			continue
		}
		info, err := os.Stat(filepath.Join(mediaDir, bucketName, filepath.FromSlash(path)))
		if err != nil {
			log.Printf("ERROR|cleaner.Clean:%s", err.Error())
			continue
		}
		if time.Since(info.ModTime()) < minOrphanAge {
			continue
		}
		if err := bucket.Remove(path); err != nil {
			log.Printf("ERROR|cleaner.Clean:%s", err.Error())
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("cleaner.Clean: removed %d orphaned objects", removed)
	}
}

// isReferenced matches an object against the URL set. Thumbnails are
// never stored in the database; they count as referenced while their
// original is.
func isReferenced(bucket storage.BucketI, referenced map[string]bool, path string) bool {
	if referenced[bucket.PublicURL(path)] {
		return true
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "thumb_") {
		return false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(base, "thumb_"), filepath.Ext(base))
	dir := path[:len(path)-len(base)]
	for url := range referenced {
		if strings.Contains(url, dir+stem) {
			return true
		}
	}
	return false
}
