package media

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(url string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder, filename string) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     PublicID(filename),
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
