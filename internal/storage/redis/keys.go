package redis

import (
	"fmt"

	"github.com/gamestack/admin/internal/model"
)

// Key prefix for all admin platform data
const keyPrefix = "gsadmin"

// Key generation functions for each entity type

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// usersIndexKey returns the Redis key for the SET of all user keys
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// teamKey returns the Redis key for a Team document
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// teamsIndexKey returns the Redis key for the SET of all team keys
func teamsIndexKey() string {
	return fmt.Sprintf("%s:idx:teams", keyPrefix)
}

// gameSettingKey returns the Redis key for a GameSetting document
func gameSettingKey(gameID string) string {
	return fmt.Sprintf("%s:game_setting:%s", keyPrefix, gameID)
}

// gameSettingsIndexKey returns the Redis key for the SET of all game setting keys
func gameSettingsIndexKey() string {
	return fmt.Sprintf("%s:idx:game_settings", keyPrefix)
}
