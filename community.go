package steamquery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// The community XML pages are not part of the documented API. They are scraped
// best effort and can change or disappear without notice.

var groupMemberPattern = regexp.MustCompile(`<steamID64>(\d+)</steamID64>`)

// GroupMembers fetches the steam64 ids of a community group's members from
// the group's XML member listing.
func (c *Client) GroupMembers(ctx context.Context, groupName string) ([]string, error) {
	pageURL := fmt.Sprintf("%s/groups/%s/memberslistxml/?xml=1", c.communityURL, url.PathEscape(groupName))

	body, errPage := c.communityPage(ctx, pageURL)
	if errPage != nil {
		return nil, errPage
	}

	if !strings.Contains(string(body), "<memberList") {
		return nil, fmt.Errorf("%w: no member list", ErrMalformedPayload)
	}

	matches := groupMemberPattern.FindAllStringSubmatch(string(body), -1)
	members := make([]string, 0, len(matches))
	for _, match := range matches {
		members = append(members, match[1])
	}

	return members, nil
}

// VACBanned reports whether a player's profile page flags a VAC ban.
func (c *Client) VACBanned(ctx context.Context, id string) (bool, error) {
	pageURL := fmt.Sprintf("%s/profiles/%s/?xml=1", c.communityURL, NormalizeID(id))

	body, errPage := c.communityPage(ctx, pageURL)
	if errPage != nil {
		return false, errPage
	}

	return bytes.Contains(body, []byte("<vacBanned>1</vacBanned>")), nil
}

func (c *Client) communityPage(ctx context.Context, pageURL string) ([]byte, error) {
	status, body, errFetch := c.fetch(ctx, pageURL)
	if errFetch != nil {
		return nil, errors.Join(errFetch, ErrTransport)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrHTTPStatus, status)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	return body, nil
}
