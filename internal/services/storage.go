package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const MaxImageSize = 5 << 20

var (
	ErrStorageUnavailable = errors.New("stockage d'images non configuré")
	ErrInvalidImage       = errors.New("image invalide")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Storage dépose les images du menu dans MinIO
type Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewStorage : publicURL est la base des URLs publiques
// (ex. https://cdn.brewbatter.in/menu-images). client peut être nil.
func NewStorage(client *minio.Client, bucket, publicURL string) *Storage {
	return &Storage{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

func (s *Storage) Enabled() bool {
	return s != nil && s.client != nil
}

// ObjectName construit le nom d'objet à partir du type MIME déclaré
func ObjectName(prefix, contentType string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: type %q non supporté", ErrInvalidImage, contentType)
	}
	return path.Join(prefix, uuid.NewString()+ext), nil
}

// UploadImage envoie le fichier et retourne son URL publique
func (s *Storage) UploadImage(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if !s.Enabled() {
		return "", ErrStorageUnavailable
	}
	if file.Size <= 0 || file.Size > MaxImageSize {
		return "", fmt.Errorf("%w: taille %d octets", ErrInvalidImage, file.Size)
	}

	contentType := file.Header.Get("Content-Type")
	object, err := ObjectName(prefix, contentType)
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, s.bucket, object, f, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload MinIO: %w", err)
	}

	log.Printf("🖼️ Image déposée: %s/%s", s.bucket, object)
	return s.URL(object), nil
}

func (s *Storage) URL(object string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + object
	}
	return s.client.EndpointURL().String() + "/" + s.bucket + "/" + object
}
