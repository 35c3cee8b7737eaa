package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// Upload folders per asset kind.
const (
	FolderVehicles = "vehicles"
	FolderDrivers  = "drivers"
	FolderProfiles = "profiles"
	FolderLogos    = "company-logos"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadToCloudinary uploads an image to Cloudinary and returns the secure
// URL. Profile and driver photos are thumbnailed; vehicle photos use a
// wide 16:9 crop.
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
	switch folder {
	case FolderProfiles, FolderDrivers:
		uploadParams.Transformation = "c_thumb,w_200,h_200"
	case FolderVehicles:
		uploadParams.Transformation = "c_fill,w_800,h_450"
	}

	resp, err := cld.Upload.Upload(context.Background(), file, uploadParams)
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
