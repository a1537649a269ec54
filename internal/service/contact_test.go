package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzin/sham-al-aqar-syria/pkg/contact"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

type fakeContactRepo struct {
	inserted []contact.ContactRequest
}

func (repo *fakeContactRepo) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeContactRepo) InsertContactRequest(ctx context.Context, request *contact.ContactRequest) (int64, error) {
	repo.inserted = append(repo.inserted, *request)
	return int64(len(repo.inserted)), nil
}

func TestSubmitStoresValidRequest(t *testing.T) {
	repo := &fakeContactRepo{}
	contactService := NewContactService(repo, "localhost", "8080")

	id, err := contactService.Submit(&contact.ContactRequest{
		Name:    "سارة",
		Email:   "sara@example.com",
		Subject: "استفسار عن شقة",
		Message: "هل الشقة في المزة ما زالت متاحة؟",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "سارة", repo.inserted[0].Name)
}

func TestSubmitRejectsIncompleteRequests(t *testing.T) {
	cases := []struct {
		name    string
		request contact.ContactRequest
	}{
		{"missing name", contact.ContactRequest{Email: "a@b.com", Message: "hi"}},
		{"missing message", contact.ContactRequest{Name: "Ali", Email: "a@b.com"}},
		{"bad email", contact.ContactRequest{Name: "Ali", Email: "not-an-email", Message: "hi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			contactService := NewContactService(repo, "localhost", "8080")

			_, err := contactService.Submit(&tc.request)
			assert.ErrorIs(t, err, customerror.ErrValidation)
			assert.Empty(t, repo.inserted)
		})
	}
}
