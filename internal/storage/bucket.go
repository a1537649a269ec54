package storage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

// BucketI is the object-storage surface the rest of the application
// depends on: upload an object, mint its public URL, remove it, list
// what the bucket holds.
type BucketI interface {
	Ensure() error
	Upload(path string, reader io.Reader) error
	PublicURL(path string) string
	Remove(path string) error
	List() ([]string, error)
}

type Bucket struct {
	MediaDir string
	Name     string
	MainUrl  string
}

func NewBucket(mediaDir string, name string, mainUrl string) BucketI {
	return &Bucket{
		MediaDir: mediaDir,
		Name:     name,
		MainUrl:  mainUrl,
	}
}

func (bucket *Bucket) root() string {
	return filepath.Join(bucket.MediaDir, bucket.Name)
}

// Ensure checks that the bucket exists and creates it when missing.
func (bucket *Bucket) Ensure() error {
	if err := os.MkdirAll(bucket.root(), 0755); err != nil {
		return customerror.NewError("Bucket.Ensure", bucket.Name, err.Error())
	}
	return nil
}

func (bucket *Bucket) Upload(path string, reader io.Reader) error {
	fullPath := filepath.Join(bucket.root(), filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return customerror.NewError("Bucket.Upload", bucket.Name, err.Error())
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return customerror.NewError("Bucket.Upload", bucket.Name, err.Error())
	}
	defer dst.Close()
	_, err = io.Copy(dst, reader)
	if err != nil {
		return customerror.NewError("Bucket.Upload", bucket.Name, err.Error())
	}
	return nil
}

func (bucket *Bucket) PublicURL(path string) string {
	return fmt.Sprintf("%s/media/%s/%s", bucket.MainUrl, bucket.Name, path)
}

func (bucket *Bucket) Remove(path string) error {
	err := os.Remove(filepath.Join(bucket.root(), filepath.FromSlash(path)))
	if err != nil {
		return customerror.NewError("Bucket.Remove", bucket.Name, err.Error())
	}
	return nil
}

// List returns the slash-separated paths of every object in the bucket.
func (bucket *Bucket) List() ([]string, error) {
	var paths []string
	root := bucket.root()
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, strings.ReplaceAll(rel, string(filepath.Separator), "/"))
		return nil
	})
	if err != nil {
		return nil, customerror.NewError("Bucket.List", bucket.Name, err.Error())
	}
	return paths, nil
}
