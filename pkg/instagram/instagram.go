package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// BusinessDiscovery fetches a public business profile with its most recent
// media through the business_discovery edge.
func (ig *igImpl) BusinessDiscovery(ctx context.Context, username string, postsLimit int) (Profile, error) {
	fields := fmt.Sprintf(
		"business_discovery.username(%s){id,username,name,followers_count,media_count,biography,profile_picture_url,"+
			"media.limit(%d){id,caption,like_count,comments_count,timestamp,media_type,media_url,thumbnail_url,views_count}}",
		username, postsLimit,
	)

	reqURL := fmt.Sprintf("%s/%s?fields=%s&access_token=%s",
		ig.cfg.BaseURL, ig.cfg.BusinessID, url.QueryEscape(fields), url.QueryEscape(ig.cfg.AccessToken))

	body, statusCode, err := ig.httpClient.Get(ctx, reqURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("BusinessDiscovery: %w", err)
	}

	var resp discoveryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Profile{}, fmt.Errorf("BusinessDiscovery: failed to decode response: %w", err)
	}
	if resp.Error != nil {
		return Profile{}, fmt.Errorf("BusinessDiscovery: api error: %s", resp.Error.Message)
	}
	if statusCode != http.StatusOK || resp.BusinessDiscovery == nil {
		return Profile{}, fmt.Errorf("BusinessDiscovery: unexpected response, status %d", statusCode)
	}

	profile := resp.BusinessDiscovery.Profile
	profile.Media = resp.BusinessDiscovery.MediaEdge.Data
	return profile, nil
}
