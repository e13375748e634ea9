package table

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// readAll drains a reader into a record slice.
func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var got []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return got
		}
		require.NoError(t, err)
		got = append(got, rec.Genus+"|"+rec.Species)
	}
}

func TestReader_CanonicalColumns(t *testing.T) {
	src := "common_name,genus,species,hybrid_marker\n" +
		"River Red Gum,Eucalyptus,camaldulensis,\n" +
		"London Plane,Platanus,x acerifolia,x\n"
	r, err := NewReader(strings.NewReader(src), FieldMap{}, discard())
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "River Red Gum", rec.CommonName)
	assert.Equal(t, "Eucalyptus", rec.Genus)
	assert.Equal(t, "camaldulensis", rec.Species)
	assert.Empty(t, rec.HybridMarker)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "x acerifolia", rec.Species)
	assert.Equal(t, "x", rec.HybridMarker)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_HeaderMatchIsCaseInsensitive(t *testing.T) {
	src := "Common_Name,GENUS,Species\nRed Gum,Eucalyptus,camaldulensis\n"
	r, err := NewReader(strings.NewReader(src), FieldMap{}, discard())
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Red Gum", rec.CommonName)
	assert.Equal(t, "Eucalyptus", rec.Genus)
}

func TestReader_FieldOverrides(t *testing.T) {
	src := "Tree Name,Botanical Genus,Botanical Species,genus\n" +
		"Red Gum,Eucalyptus,camaldulensis,WRONG\n"
	r, err := NewReader(strings.NewReader(src), FieldMap{
		CommonName: "Tree Name",
		Genus:      "Botanical Genus",
		Species:    "botanical species",
	}, discard())
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Red Gum", rec.CommonName)
	// The override beats the table's own "genus" column.
	assert.Equal(t, "Eucalyptus", rec.Genus)
	assert.Equal(t, "camaldulensis", rec.Species)
}

func TestReader_UnknownOverrideWarnsAndFallsBack(t *testing.T) {
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	src := "genus,species\nEucalyptus,camaldulensis\n"
	r, err := NewReader(strings.NewReader(src), FieldMap{Genus: "No Such Column"}, log)
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	// Canonical binding survives the bad override.
	assert.Equal(t, "Eucalyptus", rec.Genus)
	assert.Contains(t, logBuf.String(), "field mapping ignored")
	assert.Contains(t, logBuf.String(), "No Such Column")
}

func TestReader_StripsUTF8BOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("genus,species\nQuercus,robur\n")...)
	r, err := NewReader(bytes.NewReader(src), FieldMap{}, discard())
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Quercus", rec.Genus)
}

func TestReader_TranscodesWindows1252(t *testing.T) {
	// 0xF6 is ö in Windows-1252 and an invalid byte in UTF-8.
	src := []byte("genus,species\nK\xF6lreuteria,paniculata\n")
	r, err := NewReader(bytes.NewReader(src), FieldMap{}, discard())
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Kölreuteria", rec.Genus)
}

func TestReader_RaggedAndPaddedRows(t *testing.T) {
	src := "genus,species,infraspecific_name\n" +
		"Eucalyptus\n" +
		"  Quercus ,  robur , fastigiata \n"
	r, err := NewReader(strings.NewReader(src), FieldMap{}, discard())
	require.NoError(t, err)

	assert.Equal(t, []string{"Eucalyptus|", "Quercus|robur"}, readAll(t, r))
}

func TestReader_EmptyTableIsHeaderError(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), FieldMap{}, discard())
	assert.Error(t, err)
}
