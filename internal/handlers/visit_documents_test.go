package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shasthoseba/chamber-booking/internal/httperr"
)

type fakeDocumentStore struct {
	putKey         string
	putContentType string
	putBody        []byte
	puts           int
	err            error
}

func (s *fakeDocumentStore) Put(
	_ context.Context,
	key string,
	contentType string,
	body []byte,
) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.puts++
	s.putKey = key
	s.putContentType = contentType
	s.putBody = append([]byte(nil), body...)
	return "https://docs.example.com/" + key, nil
}

func TestStoreVisitDocument_UploadsContent(t *testing.T) {
	store := &fakeDocumentStore{}
	payload := []byte("lab report bytes")

	doc, err := storeVisitDocument(context.Background(), store, 7, UploadDocumentRequest{
		DocumentID:   "d-1",
		DocumentType: "lab_report",
		ContentType:  "application/pdf",
		Content:      base64.StdEncoding.EncodeToString(payload),
	})
	require.NoError(t, err)

	require.Equal(t, 1, store.puts)
	require.Equal(t, "visits/7/d-1", store.putKey)
	require.Equal(t, "application/pdf", store.putContentType)
	require.Equal(t, payload, store.putBody)

	require.Equal(t, "d-1", doc.ID)
	require.Equal(t, "lab_report", doc.Type)
	require.Equal(t, "https://docs.example.com/visits/7/d-1", doc.URL)
	require.False(t, doc.UploadTime.IsZero())
}

func TestStoreVisitDocument_MetadataOnly(t *testing.T) {
	store := &fakeDocumentStore{}

	doc, err := storeVisitDocument(context.Background(), store, 7, UploadDocumentRequest{
		DocumentType: "x_ray",
	})
	require.NoError(t, err)

	// Nothing to upload; the id is minted and the store stays untouched.
	require.Zero(t, store.puts)
	require.NotEmpty(t, doc.ID)
	require.Empty(t, doc.URL)
}

func TestStoreVisitDocument_DefaultsContentType(t *testing.T) {
	store := &fakeDocumentStore{}

	_, err := storeVisitDocument(context.Background(), store, 7, UploadDocumentRequest{
		DocumentID:   "d-2",
		DocumentType: "lab_report",
		Content:      base64.StdEncoding.EncodeToString([]byte("x")),
	})
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", store.putContentType)
}

func TestStoreVisitDocument_RejectsBadBase64(t *testing.T) {
	store := &fakeDocumentStore{}

	_, err := storeVisitDocument(context.Background(), store, 7, UploadDocumentRequest{
		DocumentType: "lab_report",
		Content:      "%%% not base64 %%%",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_document_content"))
	require.Zero(t, store.puts)
}

func TestStoreVisitDocument_PropagatesStoreError(t *testing.T) {
	store := &fakeDocumentStore{err: errors.New("bucket unreachable")}

	_, err := storeVisitDocument(context.Background(), store, 7, UploadDocumentRequest{
		DocumentType: "lab_report",
		Content:      base64.StdEncoding.EncodeToString([]byte("x")),
	})
	require.Error(t, err)
	require.False(t, httperr.IsBusiness(err, "invalid_document_content"))
}

func TestSlotDatesTouched(t *testing.T) {
	next := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	// Creation and cancellation touch one date.
	require.Equal(t, []string{"2024-06-02"}, slotDatesTouched(nil, next))

	// A same-day reschedule still touches one date.
	sameDay := time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC)
	require.Equal(t, []string{"2024-06-02"}, slotDatesTouched(&sameDay, next))

	// A cross-day reschedule frees a slot on the old date too.
	prevDay := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, []string{"2024-06-02", "2024-06-01"}, slotDatesTouched(&prevDay, next))
}
