package controllers

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/pkg/event"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/metrics"
	"github.com/shashiranjanraj/laziz/pkg/middleware"
	"github.com/shashiranjanraj/laziz/pkg/response"
	"github.com/shashiranjanraj/laziz/pkg/storage"
	"github.com/shashiranjanraj/laziz/pkg/workerpool"
)

// uploadDir is the directory on the storage disk holding menu images.
const uploadDir = "uploads"

// allowedImageTypes maps the sniffed content type to the extension the
// stored file gets. Anything else is rejected.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageController handles admin image upload, listing and deletion
// through the storage disk abstraction.
type ImageController struct{}

func NewImageController() *ImageController {
	return &ImageController{}
}

// ImageInfo is one gallery entry.
type ImageInfo struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Upload accepts one multipart image under the "image" field. The body is
// capped at UPLOAD_MAX_BYTES, the content type is sniffed from the first
// 512 bytes (the client-sent header is not trusted), and the stored name
// is a timestamp plus random suffix so uploads never collide.
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	maxBytes := config.UploadMaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		response.Error(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image exceeds the %d byte limit", maxBytes))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		response.Error(w, http.StatusBadRequest, `missing "image" file field`)
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		response.Error(w, http.StatusInternalServerError, "failed to read upload")
		return
	}
	head = head[:n]

	ext, ok := allowedImageTypes[http.DetectContentType(head)]
	if !ok {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		response.Error(w, http.StatusUnsupportedMediaType,
			"only jpeg, png and webp images are accepted")
		return
	}

	filename := newImageName(ext)
	dest := path.Join(uploadDir, filename)
	if err := storage.PutStream(dest, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		logger.WithCtx(r.Context()).Error("images: store failed", "error", err, "filename", filename)
		response.Error(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	metrics.ImageUploads.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info("image uploaded",
		"filename", filename, "size", header.Size, "admin", adminEmail(r))

	event.Fire(event.MenuChanged, nil)
	response.Created(w, ImageInfo{
		Filename:   filename,
		URL:        storage.URL(dest),
		Size:       header.Size,
		UploadedAt: time.Now().UTC(),
	})
}

// Index lists the uploaded images newest-first. File metadata is gathered
// through a bounded worker pool so a large gallery doesn't stat serially.
func (c *ImageController) Index(w http.ResponseWriter, r *http.Request) {
	names, err := storage.Files(uploadDir)
	if err != nil {
		logger.WithCtx(r.Context()).Error("images: list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "failed to list images")
		return
	}

	pool := workerpool.New(8)
	defer pool.Shutdown()

	var (
		mu     sync.Mutex
		images = make([]ImageInfo, 0, len(names))
		wg     sync.WaitGroup
	)
	for _, name := range names {
		name := name
		wg.Add(1)
		err := pool.SubmitWait(func() {
			defer wg.Done()
			p := path.Join(uploadDir, name)
			info := ImageInfo{Filename: name, URL: storage.URL(p)}
			if size, err := storage.Size(p); err == nil {
				info.Size = size
			}
			if mod, err := storage.LastModified(p); err == nil {
				info.UploadedAt = mod
			}
			mu.Lock()
			images = append(images, info)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
		}
	}
	wg.Wait()

	sort.Slice(images, func(i, j int) bool {
		return images[i].UploadedAt.After(images[j].UploadedAt)
	})
	response.Success(w, images)
}

// Destroy removes one uploaded image by filename. Path traversal in the
// name is rejected before it ever reaches the disk.
func (c *ImageController) Destroy(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		response.Error(w, http.StatusBadRequest, "invalid filename")
		return
	}

	target := path.Join(uploadDir, filename)
	if storage.Missing(target) {
		response.NotFound(w, "image not found")
		return
	}
	if err := storage.Delete(target); err != nil {
		logger.WithCtx(r.Context()).Error("images: delete failed", "error", err, "filename", filename)
		response.Error(w, http.StatusInternalServerError, "failed to delete image")
		return
	}

	logger.WithCtx(r.Context()).Info("image deleted",
		"filename", filename, "admin", adminEmail(r))

	event.Fire(event.MenuChanged, nil)
	response.Message(w, "image deleted")
}

// adminEmail reports who is acting, from the claims AdminOnly stored.
func adminEmail(r *http.Request) string {
	if claims, ok := middleware.ClaimsFromCtx(r.Context()); ok {
		return claims.Email
	}
	return ""
}

// newImageName builds "<unix-millis>-<8 hex chars><ext>".
func newImageName(ext string) string {
	suffix := make([]byte, 4)
	rand.Read(suffix) //nolint:errcheck
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)
}
