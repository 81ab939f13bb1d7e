package service

import (
	"testing"

	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugToggle_Request_DisablesUntilAck(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDebugToggle(pub, logger.Nop())

	s := d.Request(form.New())

	assert.True(t, s.Debug)
	assert.True(t, s.DebugPending)
	assert.True(t, s.DebugDisabled())
	require.Len(t, pub.published, 1)
	assert.Equal(t, models.DebugToggleRequest{Enabled: true}, pub.published[0])
}

func TestDebugToggle_RequestWhilePending_IsInert(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDebugToggle(pub, logger.Nop())

	s := d.Request(form.New())
	again := d.Request(s)

	assert.Equal(t, s, again)
	assert.Len(t, pub.published, 1)
}

func TestDebugToggle_Ack_ReenablesToggle(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDebugToggle(pub, logger.Nop())

	s := d.Ack(d.Request(form.New()))
	assert.False(t, s.DebugPending)
	assert.True(t, s.Debug)

	s = d.Request(s)
	assert.False(t, s.Debug)
	require.Len(t, pub.published, 2)
	assert.Equal(t, models.DebugToggleRequest{Enabled: false}, pub.published[1])
}

func TestDebugToggle_AckWithoutRequest_IsHarmless(t *testing.T) {
	d := NewDebugToggle(&recordingPublisher{}, logger.Nop())

	s := d.Ack(form.New())

	assert.False(t, s.DebugPending)
	assert.False(t, s.Debug)
}
