package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ArchiveFolder is the Cloudinary folder exported reports are stored under.
const ArchiveFolder = "workhub/reports"

// Archiver keeps a copy of an exported report and returns where it went.
type Archiver interface {
	Archive(ctx context.Context, name string, content []byte) (string, error)
}

// Uploader is the subset of the Cloudinary upload API used here.
// *uploader.API satisfies it.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryArchiver uploads reports as raw assets.
type CloudinaryArchiver struct {
	uploader Uploader
	folder   string
}

// NewCloudinaryArchiver builds an archiver. Pass &cld.Upload from a configured client.
func NewCloudinaryArchiver(u Uploader) *CloudinaryArchiver {
	return &CloudinaryArchiver{uploader: u, folder: ArchiveFolder}
}

func (a *CloudinaryArchiver) Archive(ctx context.Context, name string, content []byte) (string, error) {
	params := uploader.UploadParams{
		Folder:       a.folder,
		PublicID:     strings.TrimSuffix(name, ".csv"),
		ResourceType: "raw",
	}
	result, err := a.uploader.Upload(ctx, bytes.NewReader(content), params)
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", name, err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for report %s", name)
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.PublicID, nil
}
