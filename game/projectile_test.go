package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazerLifecycle(t *testing.T) {
	cfg := testConfig()
	var l Lazer
	muzzle := Vec2{100, -440}

	require.True(t, l.Fire())
	assert.Equal(t, LazerFire, l.State)
	assert.False(t, l.Collidable(), "a requested shot is not in flight yet")

	l.Update(0.01, muzzle, cfg)
	assert.Equal(t, LazerFired, l.State)
	assert.Equal(t, muzzle, l.Pos)

	l.Update(0.01, Vec2{}, cfg)
	assert.Equal(t, 100.0, l.Pos.X, "the lazer does not follow the player")
	assert.InDelta(t, -440+12.5, l.Pos.Y, 1e-9)

	// Leaves the top of the scene
	l.Pos.Y = cfg.SceneHeight + 1
	l.Update(0.01, muzzle, cfg)
	assert.Equal(t, LazerIdle, l.State)
}

func TestLazerFireIsIgnoredUnlessIdle(t *testing.T) {
	cfg := testConfig()
	var l Lazer

	require.True(t, l.Fire())
	assert.False(t, l.Fire())
	assert.Equal(t, LazerFire, l.State)

	l.Update(0.01, Vec2{0, -440}, cfg)
	l.Update(0.01, Vec2{0, -440}, cfg)
	pos := l.Pos

	assert.False(t, l.Fire())
	assert.Equal(t, LazerFired, l.State)
	assert.Equal(t, pos, l.Pos, "firing again must not reposition the shot")
}

func TestBulletsFallAndLeaveTheScene(t *testing.T) {
	cfg := testConfig()
	var b Bullets

	b.Spawn(Vec2{0, 0})
	b.Spawn(Vec2{50, -480})

	b.Update(0.1, cfg)
	items := b.Items()
	require.Len(t, items, 2)
	assert.InDelta(t, -30.0, items[0].Pos.Y, 1e-9)
	assert.True(t, items[0].Alive)
	assert.False(t, items[1].Alive, "below the scene the bullet is removed")

	b.Compact()
	assert.Len(t, b.Items(), 1)
	assert.Equal(t, 1, b.Len())

	b.Clear()
	assert.Zero(t, b.Len())
}
