package profile

import (
	"strconv"

	"linkvault/internal/domain/constants"
	"linkvault/internal/domain/entity"
)

// AppInfo identifies the application in the tags of persisted records.
type AppInfo struct {
	Name        string
	Version     string
	ProfileType string
}

// DocumentTags returns the tags attached to a published profile document.
func DocumentTags(app AppInfo, p *entity.Profile) entity.Tags {
	return entity.Tags{
		{Name: constants.TagContentType, Value: constants.ContentTypeJSON},
		{Name: constants.TagAppName, Value: app.Name},
		{Name: constants.TagAppVersion, Value: app.Version},
		{Name: constants.TagProfileType, Value: app.ProfileType},
		{Name: constants.TagCreator, Value: p.Metadata.Creator},
		{Name: constants.TagName, Value: p.Name},
		{Name: constants.TagUsername, Value: p.Username},
		{Name: constants.TagPublic, Value: strconv.FormatBool(p.Metadata.IsPublic)},
		{Name: constants.TagAllowSearch, Value: strconv.FormatBool(p.Settings.AllowSearch)},
	}
}

// MappingTags returns the tags attached to a username mapping record.
func MappingTags(app AppInfo, username string) entity.Tags {
	return entity.Tags{
		{Name: constants.TagContentType, Value: constants.ContentTypeJSON},
		{Name: constants.TagAppName, Value: app.Name},
		{Name: constants.TagMappingType, Value: constants.MappingTypeUsernameToTx},
		{Name: constants.TagUsername, Value: username},
	}
}

// MappingFilter returns the tag filter that finds the mapping records of username.
func MappingFilter(app AppInfo, username string) entity.Tags {
	return entity.Tags{
		{Name: constants.TagAppName, Value: app.Name},
		{Name: constants.TagMappingType, Value: constants.MappingTypeUsernameToTx},
		{Name: constants.TagUsername, Value: username},
	}
}

// DirectoryFilter returns the tag filter that lists every profile document version.
// Private versions must be seen too, so that they hide the public versions they replace.
func DirectoryFilter(app AppInfo) entity.Tags {
	return entity.Tags{
		{Name: constants.TagAppName, Value: app.Name},
		{Name: constants.TagProfileType, Value: app.ProfileType},
	}
}

// Listed reports whether a profile version with tags belongs in the public directory.
// Versions published before the Allow-Search tag existed count as searchable.
func Listed(tags entity.Tags) bool {
	if public, _ := tags.Get(constants.TagPublic); public != "true" {
		return false
	}
	allowSearch, ok := tags.Get(constants.TagAllowSearch)

	return !ok || allowSearch == "true"
}
