package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestRegister_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	_, err := s.Register(context.Background(), RegisterInput{Email: "a@b.c", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Register(context.Background(), RegisterInput{Username: "u", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Register(context.Background(), RegisterInput{Username: "u", Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegister_ConflictAndHappyPath(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrConflict)

	_, err := s.Register(context.Background(), RegisterInput{
		Username: "taken", Email: "taken@example.com", PasswordHash: "h",
	})
	require.ErrorIs(t, err, ErrConflict)

	want := mustUser("fresh")
	ms.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (*models.User, error) {
			require.Equal(t, "fresh", u.Username)
			require.Equal(t, "Full fresh", u.FullName)
			return want, nil
		})

	got, err := s.Register(context.Background(), RegisterInput{
		Username: "fresh", Email: "fresh@example.com", FullName: "  Full fresh  ", PasswordHash: "h",
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUserByID_ErrorMapping(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	_, err := s.UserByID(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().UserByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	_, err = s.UserByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().UserByID(gomock.Any(), "boom").Return(nil, errors.New("mongo down"))
	_, err = s.UserByID(context.Background(), "boom")
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdateAccount_NothingToUpdate(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	_, err := s.UpdateAccount(context.Background(), UpdateAccountInput{UserID: "u1"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfirmAvatar_ReplacesAndDeletesOld(t *testing.T) {
	s, ms, mb := newServiceWithMocks(t)

	old := mustUser("ava")
	old.Avatar = "https://cdn.example.com/avatars/u1/old.png"

	updated := *old
	updated.Avatar = "https://cdn.example.com/avatars/u1/new.png"

	userID := old.ID.Hex()

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(old, nil)
	mb.EXPECT().
		CheckMediaUpload(gomock.Any(), storage.MediaAvatar, userID, "avatars/u1/new.png").
		Return(updated.Avatar, nil)
	ms.EXPECT().SetAvatar(gomock.Any(), userID, updated.Avatar).Return(&updated, nil)
	mb.EXPECT().DeleteByURL(gomock.Any(), old.Avatar).Return(nil)

	got, err := s.ConfirmAvatar(context.Background(), userID, "avatars/u1/new.png")
	require.NoError(t, err)
	require.Equal(t, updated.Avatar, got.Avatar)
}

func TestConfirmAvatar_BlobFailureDoesNotBreakUpdate(t *testing.T) {
	s, ms, mb := newServiceWithMocks(t)

	old := mustUser("ava2")
	old.Avatar = "https://cdn.example.com/avatars/u2/old.png"

	updated := *old
	updated.Avatar = "https://cdn.example.com/avatars/u2/new.png"

	userID := old.ID.Hex()

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(old, nil)
	mb.EXPECT().
		CheckMediaUpload(gomock.Any(), storage.MediaAvatar, userID, "avatars/u2/new.png").
		Return(updated.Avatar, nil)
	ms.EXPECT().SetAvatar(gomock.Any(), userID, updated.Avatar).Return(&updated, nil)
	// Сбой удаления старого объекта не отменяет подтверждение.
	mb.EXPECT().DeleteByURL(gomock.Any(), old.Avatar).Return(errors.New("s3 down"))

	got, err := s.ConfirmAvatar(context.Background(), userID, "avatars/u2/new.png")
	require.NoError(t, err)
	require.Equal(t, updated.Avatar, got.Avatar)
}

func TestConfirmAvatar_UploadMissing(t *testing.T) {
	s, ms, mb := newServiceWithMocks(t)

	user := mustUser("ava3")
	userID := user.ID.Hex()

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil)
	mb.EXPECT().
		CheckMediaUpload(gomock.Any(), storage.MediaAvatar, userID, "avatars/x/ghost.png").
		Return("", storage.ErrBlobNotFound)

	_, err := s.ConfirmAvatar(context.Background(), userID, "avatars/x/ghost.png")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetRefreshToken_Validation(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	require.ErrorIs(t, s.SetRefreshToken(context.Background(), "u1", ""), ErrInvalidArgument)
	require.ErrorIs(t, s.SetRefreshToken(context.Background(), "", "tok"), ErrInvalidArgument)

	ms.EXPECT().SetRefreshToken(gomock.Any(), "u1", "tok").Return(nil)
	require.NoError(t, s.SetRefreshToken(context.Background(), "u1", "tok"))

	// ClearRefreshToken шлёт пустой токен ($unset на сторадже).
	ms.EXPECT().SetRefreshToken(gomock.Any(), "u1", "").Return(nil)
	require.NoError(t, s.ClearRefreshToken(context.Background(), "u1"))
}

func TestChannelProfile_PassesViewer(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	want := &models.ChannelProfile{Username: "channel", IsSubscribed: true}
	ms.EXPECT().ChannelProfile(gomock.Any(), "channel", "viewer1").Return(want, nil)

	got, err := s.ChannelProfile(context.Background(), "  channel  ", "viewer1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.ChannelProfile(context.Background(), "   ", "viewer1")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestChannelStats_OwnerOnly(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	// Чужой дашборд закрыт.
	_, err := s.ChannelStats(context.Background(), "ch1", "intruder")
	require.ErrorIs(t, err, ErrPermissionDenied)

	want := &models.ChannelStats{TotalVideos: 2}
	ms.EXPECT().ChannelStats(gomock.Any(), "ch1").Return(want, nil)

	got, err := s.ChannelStats(context.Background(), "ch1", "ch1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
