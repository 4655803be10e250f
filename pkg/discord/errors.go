package discord

import "errors"

var errWebhookRequired = errors.New("discord webhook ID and token are required")
