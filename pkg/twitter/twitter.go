package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrUserNotFound = errors.New("twitter: user not found")

func (tw *twImpl) UserByUsername(ctx context.Context, username string) (User, error) {
	reqURL := fmt.Sprintf("%s/users/by/username/%s?user.fields=public_metrics,description,profile_image_url",
		tw.cfg.BaseURL, url.PathEscape(username))

	body, statusCode, err := tw.httpClient.Get(ctx, reqURL, tw.authHeader())
	if err != nil {
		return User{}, fmt.Errorf("UserByUsername: %w", err)
	}
	if statusCode == http.StatusNotFound {
		return User{}, ErrUserNotFound
	}
	if statusCode != http.StatusOK {
		return User{}, fmt.Errorf("UserByUsername: unexpected status %d", statusCode)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return User{}, fmt.Errorf("UserByUsername: failed to decode response: %w", err)
	}
	if resp.Data == nil {
		return User{}, ErrUserNotFound
	}
	return *resp.Data, nil
}

func (tw *twImpl) RecentTweets(ctx context.Context, userID string, maxResults int) ([]Tweet, error) {
	reqURL := fmt.Sprintf("%s/users/%s/tweets?tweet.fields=public_metrics,created_at,text&max_results=%d&exclude=retweets,replies",
		tw.cfg.BaseURL, url.PathEscape(userID), maxResults)

	body, statusCode, err := tw.httpClient.Get(ctx, reqURL, tw.authHeader())
	if err != nil {
		return nil, fmt.Errorf("RecentTweets: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("RecentTweets: unexpected status %d", statusCode)
	}

	var resp tweetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("RecentTweets: failed to decode response: %w", err)
	}
	return resp.Data, nil
}

func (tw *twImpl) Replies(ctx context.Context, tweetID string, maxResults int) ([]string, error) {
	query := url.QueryEscape(fmt.Sprintf("conversation_id:%s", tweetID))
	reqURL := fmt.Sprintf("%s/tweets/search/recent?query=%s&max_results=%d&tweet.fields=text",
		tw.cfg.BaseURL, query, maxResults)

	body, statusCode, err := tw.httpClient.Get(ctx, reqURL, tw.authHeader())
	if err != nil {
		return nil, fmt.Errorf("Replies: %w", err)
	}
	// Reply search is heavily rate limited; treat a 429 as no replies.
	if statusCode == http.StatusTooManyRequests {
		return nil, nil
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("Replies: unexpected status %d", statusCode)
	}

	var resp tweetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("Replies: failed to decode response: %w", err)
	}

	texts := make([]string, 0, len(resp.Data))
	for _, t := range resp.Data {
		texts = append(texts, t.Text)
	}
	return texts, nil
}

func (tw *twImpl) authHeader() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + tw.cfg.BearerToken,
	}
}
