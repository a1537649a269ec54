package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/alzin/sham-al-aqar-syria/internal/storage"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

const thumbWidth = 800

type UploadServiceI interface {
	UploadImages(userId uuid.UUID, files []*multipart.FileHeader) ([]string, error)
	UploadAvatar(userId uuid.UUID, file *multipart.FileHeader) (string, error)
}

type UploadService struct {
	bucket storage.BucketI
	host   string
	port   string
}

func NewUploadService(bucket storage.BucketI, host string, port string) UploadServiceI {
	return &UploadService{
		bucket: bucket,
		host:   host,
		port:   port,
	}
}

func validImageExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// UploadImages stores the files one at a time under the user's prefix
// and returns their public URLs in order. The first failure aborts the
// batch: later files are never attempted and already stored objects
// are left in place.
func (uploadService *UploadService) UploadImages(userId uuid.UUID, files []*multipart.FileHeader) ([]string, error) {
	urls := []string{}
	total := len(files)
	for i, file := range files {
		url, err := uploadService.uploadOne(userId.String(), file)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
		log.Printf("UploadService.UploadImages: %d/%d done (%d%%)", i+1, total, (i+1)*100/total)
	}
	return urls, nil
}

func (uploadService *UploadService) UploadAvatar(userId uuid.UUID, file *multipart.FileHeader) (string, error) {
	return uploadService.uploadOne("avatars/"+userId.String(), file)
}

func (uploadService *UploadService) uploadOne(prefix string, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	if !validImageExt(ext) {
		return "", customerror.ErrInvalidFileType
	}
	src, err := file.Open()
	if err != nil {
		return "", customerror.NewError("UploadService.uploadOne.Open", uploadService.host+":"+uploadService.port, err.Error())
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return "", customerror.NewError("UploadService.uploadOne.Read", uploadService.host+":"+uploadService.port, err.Error())
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	path := prefix + "/" + name
	if err := uploadService.bucket.Upload(path, bytes.NewReader(data)); err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("UploadService.uploadOne")
		return "", customErr
	}

	uploadService.makeThumbnail(prefix, name, data)
	return uploadService.bucket.PublicURL(path), nil
}

// makeThumbnail writes an 800px-wide JPEG rendition next to the
// original. Best effort: files that do not decode are skipped.
func (uploadService *UploadService) makeThumbnail(prefix string, name string, data []byte) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		log.Printf("UploadService.makeThumbnail: %s", err.Error())
		return
	}
	thumbPath := prefix + "/thumb_" + strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	if err := uploadService.bucket.Upload(thumbPath, &buf); err != nil {
		log.Printf("UploadService.makeThumbnail: %s", err.Error())
	}
}
