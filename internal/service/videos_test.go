package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublishVideo_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID().Hex()

	cases := []struct {
		name string
		in   PublishVideoInput
	}{
		{"empty owner", PublishVideoInput{Title: "t", Duration: 1, VideoKey: "k", ThumbnailKey: "k"}},
		{"empty title", PublishVideoInput{OwnerID: owner, Duration: 1, VideoKey: "k", ThumbnailKey: "k"}},
		{"zero duration", PublishVideoInput{OwnerID: owner, Title: "t", VideoKey: "k", ThumbnailKey: "k"}},
		{"missing video key", PublishVideoInput{OwnerID: owner, Title: "t", Duration: 1, ThumbnailKey: "k"}},
		{"missing thumbnail key", PublishVideoInput{OwnerID: owner, Title: "t", Duration: 1, VideoKey: "k"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.PublishVideo(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestPublishVideo_ConfirmsBothBlobs(t *testing.T) {
	s, ms, mb := newServiceWithMocks(t)

	ownerOID := primitive.NewObjectID()
	owner := ownerOID.Hex()

	mb.EXPECT().
		CheckMediaUpload(gomock.Any(), storage.MediaVideo, owner, "videos/o/v.mp4").
		Return("https://cdn.example.com/videos/o/v.mp4", nil)
	mb.EXPECT().
		CheckMediaUpload(gomock.Any(), storage.MediaThumbnail, owner, "thumbnails/o/t.png").
		Return("https://cdn.example.com/thumbnails/o/t.png", nil)

	ms.EXPECT().
		CreateVideo(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v models.Video) (*models.Video, error) {
			require.Equal(t, "https://cdn.example.com/videos/o/v.mp4", v.VideoFile)
			require.Equal(t, "https://cdn.example.com/thumbnails/o/t.png", v.Thumbnail)
			require.True(t, v.IsPublished)
			require.Equal(t, ownerOID, v.OwnerID)
			v.ID = primitive.NewObjectID()
			return &v, nil
		})

	got, err := s.PublishVideo(context.Background(), PublishVideoInput{
		OwnerID:      owner,
		Title:        "demo",
		Duration:     12.5,
		VideoKey:     "videos/o/v.mp4",
		ThumbnailKey: "thumbnails/o/t.png",
	})
	require.NoError(t, err)
	require.Equal(t, "demo", got.Title)
}

func TestVideoByID_IncrementsAndAppendsHistory(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	video := mustVideo(owner, "watched")
	video.Views = 7

	ms.EXPECT().VideoByIDIncViews(gomock.Any(), video.ID.Hex()).Return(video, nil)
	ms.EXPECT().AddToWatchHistory(gomock.Any(), "viewer1", video.ID.Hex()).Return(nil)

	got, err := s.VideoByID(context.Background(), video.ID.Hex(), "viewer1")
	require.NoError(t, err)
	require.Equal(t, int64(7), got.Views)
}

func TestVideoByID_AnonymousSkipsHistory(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	video := mustVideo(primitive.NewObjectID(), "anon")
	ms.EXPECT().VideoByIDIncViews(gomock.Any(), video.ID.Hex()).Return(video, nil)

	_, err := s.VideoByID(context.Background(), video.ID.Hex(), "  ")
	require.NoError(t, err)
}

func TestVideoByID_HistoryFailureIsBestEffort(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	video := mustVideo(primitive.NewObjectID(), "resilient")
	ms.EXPECT().VideoByIDIncViews(gomock.Any(), video.ID.Hex()).Return(video, nil)
	ms.EXPECT().AddToWatchHistory(gomock.Any(), "viewer1", video.ID.Hex()).Return(errors.New("mongo down"))

	_, err := s.VideoByID(context.Background(), video.ID.Hex(), "viewer1")
	require.NoError(t, err)
}

func TestUpdateVideoDetails_OwnershipEnforced(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	video := mustVideo(owner, "locked")

	ms.EXPECT().VideoByID(gomock.Any(), video.ID.Hex()).Return(video, nil)

	title := "hijack"
	_, err := s.UpdateVideoDetails(context.Background(), UpdateVideoDetailsInput{
		VideoID: video.ID.Hex(),
		ActorID: primitive.NewObjectID().Hex(),
		Title:   &title,
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestTogglePublish_FlipsFlag(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	video := mustVideo(owner, "flip")
	video.IsPublished = true

	ms.EXPECT().VideoByID(gomock.Any(), video.ID.Hex()).Return(video, nil)
	ms.EXPECT().SetPublished(gomock.Any(), video.ID.Hex(), false).Return(nil)

	published, err := s.TogglePublish(context.Background(), video.ID.Hex(), owner.Hex())
	require.NoError(t, err)
	require.False(t, published)
}

func TestDeleteVideo_CascadeThenBlobs(t *testing.T) {
	s, ms, mb := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	video := mustVideo(owner, "gone")

	ms.EXPECT().VideoByID(gomock.Any(), video.ID.Hex()).Return(video, nil)
	ms.EXPECT().DeleteVideo(gomock.Any(), video.ID.Hex()).Return(nil)
	mb.EXPECT().DeleteByURL(gomock.Any(), video.VideoFile).Return(nil)
	mb.EXPECT().DeleteByURL(gomock.Any(), video.Thumbnail).Return(errors.New("s3 down"))

	require.NoError(t, s.DeleteVideo(context.Background(), video.ID.Hex(), owner.Hex()))
}

func TestDeleteVideo_NonOwnerRejectedBeforeCascade(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	video := mustVideo(primitive.NewObjectID(), "protected")
	ms.EXPECT().VideoByID(gomock.Any(), video.ID.Hex()).Return(video, nil)

	err := s.DeleteVideo(context.Background(), video.ID.Hex(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSearchVideos_RejectsUnknownSortField(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	_, err := s.SearchVideos(context.Background(), models.VideoListParams{SortBy: "rating"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().ListVideos(gomock.Any(), gomock.Any()).Return([]models.VideoView{}, nil)
	_, err = s.SearchVideos(context.Background(), models.VideoListParams{SortBy: models.SortByViews})
	require.NoError(t, err)
}

func TestChannelVideos_HidesDraftsFromNonOwners(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID().Hex()

	// Чужой актор и аноним получают только опубликованные видео.
	for _, actor := range []string{primitive.NewObjectID().Hex(), ""} {
		ms.EXPECT().
			VideosByOwner(gomock.Any(), owner, true, gomock.Any()).
			Return([]models.Video{}, nil)

		_, err := s.ChannelVideos(context.Background(), owner, actor, models.VideoListParams{})
		require.NoError(t, err)
	}

	// Владельцу отдаются и черновики.
	ms.EXPECT().
		VideosByOwner(gomock.Any(), owner, false, gomock.Any()).
		Return([]models.Video{}, nil)

	_, err := s.ChannelVideos(context.Background(), owner, owner, models.VideoListParams{})
	require.NoError(t, err)
}

func TestChannelVideos_RejectsUnknownSortField(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID().Hex()

	_, err := s.ChannelVideos(context.Background(), owner, owner, models.VideoListParams{SortBy: "rating"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
