package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/yungbote/sunomirror-backend/internal/types"
	"github.com/yungbote/sunomirror-backend/internal/upstream"
)

// Row constructors from parsed upstream documents. These are the only
// places where a document becomes an entity, so the default policy for
// missing fields lives here and nowhere else.

func newProfileRow(doc upstream.ProfileDoc) *types.Profile {
	return &types.Profile{
		ID:                 doc.StorageID(),
		Handle:             doc.Handle,
		DisplayName:        doc.DisplayName,
		ProfileDescription: doc.ProfileDescription,
		AvatarImageURL:     doc.AvatarImageURL,
	}
}

func newClipRow(doc upstream.ClipDoc, profileID *string) *types.Clip {
	return &types.Clip{
		ID:                doc.ID,
		ProfileID:         profileID,
		Title:             doc.Title,
		Status:            doc.Status,
		Caption:           doc.Caption,
		Type:              doc.Type,
		Duration:          doc.Duration,
		PlayCount:         doc.PlayCount,
		UpvoteCount:       doc.UpvoteCount,
		CommentCount:      doc.CommentCount,
		FlagCount:         doc.FlagCount,
		AudioURL:          doc.AudioURL,
		VideoURL:          doc.VideoURL,
		ImageURL:          doc.ImageURL,
		ImageLargeURL:     doc.ImageLargeURL,
		Metadata:          metadataBlob(doc.Metadata),
		EntityType:        doc.EntityType,
		MajorModelVersion: doc.MajorModelVersion,
		ModelName:         doc.ModelName,
		Priority:          doc.Priority,
		BatchIndex:        doc.BatchIndex,
		UserID:            doc.UserID,
		DisplayName:       doc.DisplayName,
		Handle:            doc.Handle,
		AvatarImageURL:    doc.AvatarImageURL,
		IsHandleUpdated:   doc.IsHandleUpdated,
		AllowComments:     doc.AllowComments,
		IsPublic:          doc.IsPublic,
		Explicit:          doc.Explicit,
		IsTrashed:         doc.IsTrashed,
		IsLiked:           doc.IsLiked,
		IsContestClip:     doc.IsContestClip,
		HasHook:           doc.HasHook,
		RefundCredits:     doc.RefundCredits,
		Stream:            doc.Stream,
		MakeInstrumental:  doc.MakeInstrumental,
		CanRemix:          doc.CanRemix,
		IsRemix:           doc.IsRemix,
		HasStem:           doc.HasStem,
		VideoIsStale:      doc.VideoIsStale,
		UsesLatestModel:   doc.UsesLatestModel,
		IsPinned:          doc.IsPinned,
	}
}

func newPlaylistRow(doc upstream.PlaylistDoc, profileID *string, fallbackHandle string) *types.Playlist {
	userHandle := doc.UserHandle
	if userHandle == "" {
		userHandle = fallbackHandle
	}
	return &types.Playlist{
		ID:                 doc.ID,
		ProfileID:          profileID,
		Name:               doc.Name,
		Description:        doc.Description,
		ImageURL:           doc.ImageURL,
		UpvoteCount:        doc.UpvoteCount,
		PlayCount:          doc.PlayCount,
		SongCount:          doc.SongCount,
		DislikeCount:       doc.DislikeCount,
		FlagCount:          doc.FlagCount,
		SkipCount:          doc.SkipCount,
		NumTotalResults:    doc.NumTotalResults,
		CurrentPage:        doc.CurrentPage,
		EntityType:         doc.EntityType,
		NextCursor:         doc.NextCursor,
		IsOwned:            doc.IsOwned,
		IsPublic:           doc.IsPublic,
		IsTrashed:          doc.IsTrashed,
		IsHidden:           doc.IsHidden,
		IsDiscoverPlaylist: doc.IsDiscoverPlaylist,
		UserDisplayName:    doc.UserDisplayName,
		UserHandle:         userHandle,
		UserAvatarImageURL: doc.UserAvatarImageURL,
	}
}

// playlistScalarUpdates builds the column set for a playlist refresh from
// the keys the raw document actually carries. A field upstream omitted keeps
// its stored value instead of collapsing to the parsed zero.
func playlistScalarUpdates(doc upstream.Document, parsed upstream.PlaylistDoc) map[string]any {
	columns := map[string]any{
		"name":                  parsed.Name,
		"description":           parsed.Description,
		"image_url":             parsed.ImageURL,
		"upvote_count":          parsed.UpvoteCount,
		"play_count":            parsed.PlayCount,
		"song_count":            parsed.SongCount,
		"dislike_count":         parsed.DislikeCount,
		"flag_count":            parsed.FlagCount,
		"skip_count":            parsed.SkipCount,
		"num_total_results":     parsed.NumTotalResults,
		"current_page":          parsed.CurrentPage,
		"entity_type":           parsed.EntityType,
		"next_cursor":           parsed.NextCursor,
		"is_owned":              parsed.IsOwned,
		"is_public":             parsed.IsPublic,
		"is_trashed":            parsed.IsTrashed,
		"is_hidden":             parsed.IsHidden,
		"is_discover_playlist":  parsed.IsDiscoverPlaylist,
		"user_display_name":     parsed.UserDisplayName,
		"user_handle":           parsed.UserHandle,
		"user_avatar_image_url": parsed.UserAvatarImageURL,
	}
	updates := make(map[string]any, len(columns))
	for column, value := range columns {
		if _, ok := doc[column]; ok {
			updates[column] = value
		}
	}
	return updates
}

func metadataBlob(metadata map[string]any) datatypes.JSON {
	if len(metadata) == 0 {
		return nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
