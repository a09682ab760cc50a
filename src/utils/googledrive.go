package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService initializes the Drive client from a service
// account, either a credentials file path or the JSON content itself.
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH")
		var credsBytes []byte
		if credentialsPath == "" {
			credentialsJSON := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON")
			if credentialsJSON == "" {
				initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be set")
				return
			}
			credsBytes = []byte(credentialsJSON)
		} else {
			var readErr error
			credsBytes, readErr = os.ReadFile(credentialsPath)
			if readErr != nil {
				initErr = fmt.Errorf("reading credentials file: %w", readErr)
				return
			}
		}

		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("loading credentials: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("creating Google Drive service: %w", err)
			return
		}

		log.Info().Msg("Google Drive service initialized")
	})
	return initErr
}

// GetGoogleDriveService returns the Drive client, initializing it if needed
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL pulls the file id out of a Google Drive URL
func ExtractFileIDFromURL(url string) (string, error) {
	// Common Google Drive URL shapes
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,                     // /file/d/FILE_ID
		`id=([a-zA-Z0-9_-]+)`,                          // ?id=FILE_ID
		`/folders/([a-zA-Z0-9_-]+)`,                    // /folders/FOLDER_ID
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`, // open?id=FILE_ID
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("could not extract a file id from URL: %s", url)
}

// DownloadFileFromGoogleDrive downloads one shared file by id
func DownloadFileFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", fmt.Errorf("getting Google Drive service: %w", err)
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("getting file information: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("Google Drive folders cannot be downloaded directly")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("downloading file: %w", err)
	}

	log.Info().Str("name", file.Name).Str("mimeType", file.MimeType).Msg("downloaded file from Google Drive")

	return resp.Body, file.Name, nil
}

// IsGoogleDriveURL reports whether a URL points at Google Drive
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
