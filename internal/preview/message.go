// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import "uikitlab/internal/models"

// Cross-frame message types. The host posts code updates into the frame;
// the frame posts a single readiness notification back after its load
// event fires. The payload is non-sensitive snippet text, so no origin
// restriction is applied on either side.
const (
	MsgUpdateCode = "UPDATE_CODE"
	MsgFrameReady = "IFRAME_READY"
)

// UpdateCodeMessage is posted host → frame whenever the editor content
// changes. The frame patches its document in place instead of reloading.
type UpdateCodeMessage struct {
	Type string               `json:"type"`
	Code models.ComponentCode `json:"code"`
}

// ReadyMessage is posted frame → host exactly once per document load.
// The host must not post UPDATE_CODE before receiving it.
type ReadyMessage struct {
	Type string `json:"type"`
}

// NewUpdateCode builds an UPDATE_CODE message for the given snippet.
func NewUpdateCode(code models.ComponentCode) UpdateCodeMessage {
	return UpdateCodeMessage{Type: MsgUpdateCode, Code: code}
}
