package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *OSSService {
	return &OSSService{
		Endpoint:   "oss-eu-central-1.aliyuncs.com",
		BucketName: "karate-media",
		Prefix:     "uploads",
	}
}

// avatar_url menyimpan URL publik penuh (endpoint/bucket/key),
// bukan object key telanjang.
func TestPublicURL(t *testing.T) {
	t.Setenv("OSS_PUBLIC_BASE", "")
	s := testService()

	got := s.PublicURL("uploads/avatars/abc.webp")
	assert.Equal(t, "https://oss-eu-central-1.aliyuncs.com/karate-media/uploads/avatars/abc.webp", got)
	assert.Empty(t, s.PublicURL(""))
}

func TestPublicURL_WithPublicBase(t *testing.T) {
	t.Setenv("OSS_PUBLIC_BASE", "https://cdn.example.com/")
	s := testService()

	got := s.PublicURL("uploads/avatars/abc.webp")
	assert.Equal(t, "https://cdn.example.com/uploads/avatars/abc.webp", got)
}

// DeleteByPublicURL harus bisa membalikkan apa yang PublicURL hasilkan.
func TestExtractKeyFromPublicURL_Roundtrip(t *testing.T) {
	t.Setenv("OSS_PUBLIC_BASE", "")
	s := testService()

	key := "uploads/avatars/abc.webp"
	got, err := s.ExtractKeyFromPublicURL(s.PublicURL(key))
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = s.ExtractKeyFromPublicURL("")
	assert.Error(t, err)
}

func TestBuildObjectKey(t *testing.T) {
	s := testService()
	assert.Equal(t, "uploads/avatars/x.webp", s.buildObjectKey("/avatars/", "x.webp"))
}
