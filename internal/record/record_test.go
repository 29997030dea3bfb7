package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFor(t *testing.T) {
	assert.Equal(t, "/out/face_Scrambled.region.json", PathFor("/out/face_Scrambled.png"))
	assert.Equal(t, "pic.region.json", PathFor("pic.jpeg"))
	assert.Equal(t, "noext.region.json", PathFor("noext"))
}

func TestDigestRoundTrip(t *testing.T) {
	s := FormatDigest(0xdeadbeef01020304)
	assert.Equal(t, "deadbeef01020304", s)
	d, err := ParseDigest(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xdeadbeef01020304), d)

	_, err = ParseDigest("not-hex")
	require.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face_Scrambled.region.json")
	r := Record{
		Image:        "face_Scrambled.png",
		MinRow:       12,
		MaxRow:       88,
		MinCol:       30,
		MaxCol:       101,
		KeyLength:    10,
		RegionDigest: FormatDigest(42),
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, Save(path, r))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.region.json"))
	require.Error(t, err)
}

func TestLoad_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.region.json")
	require.NoError(t, Save(path, Record{}))
	// overwrite with junk
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
