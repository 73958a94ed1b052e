package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow"
)

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		mime string
		want whatsmeow.MediaType
	}{
		{"image/png", whatsmeow.MediaImage},
		{"IMAGE/JPEG", whatsmeow.MediaImage},
		{"video/mp4", whatsmeow.MediaVideo},
		{"audio/ogg", whatsmeow.MediaAudio},
		{"application/pdf", whatsmeow.MediaDocument},
		{"", whatsmeow.MediaDocument},
		{"garbage", whatsmeow.MediaDocument},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, mediaTypeFor(tt.mime))
		})
	}
}

func TestBuildMediaMessage(t *testing.T) {
	up := whatsmeow.UploadResponse{
		URL:           "https://mmg.example/file",
		DirectPath:    "/v/file",
		MediaKey:      []byte("key"),
		FileEncSHA256: []byte("enc"),
		FileSHA256:    []byte("sha"),
		FileLength:    42,
	}

	t.Run("document keeps file name", func(t *testing.T) {
		media := Media{FileName: "report.pdf", MimeType: "application/pdf"}
		msg := buildMediaMessage(media, whatsmeow.MediaDocument, up)

		doc := msg.GetDocumentMessage()
		require.NotNil(t, doc)
		assert.Equal(t, "report.pdf", doc.GetFileName())
		assert.Equal(t, "application/pdf", doc.GetMimetype())
		assert.Equal(t, uint64(42), doc.GetFileLength())
		assert.Equal(t, "/v/file", doc.GetDirectPath())
	})

	t.Run("image", func(t *testing.T) {
		msg := buildMediaMessage(Media{MimeType: "image/png"}, whatsmeow.MediaImage, up)

		img := msg.GetImageMessage()
		require.NotNil(t, img)
		assert.Equal(t, "image/png", img.GetMimetype())
		assert.Equal(t, []byte("key"), img.GetMediaKey())
		assert.Nil(t, msg.GetDocumentMessage())
	})

	t.Run("video", func(t *testing.T) {
		msg := buildMediaMessage(Media{MimeType: "video/mp4"}, whatsmeow.MediaVideo, up)
		assert.NotNil(t, msg.GetVideoMessage())
	})

	t.Run("audio", func(t *testing.T) {
		msg := buildMediaMessage(Media{MimeType: "audio/ogg"}, whatsmeow.MediaAudio, up)
		assert.NotNil(t, msg.GetAudioMessage())
	})
}
