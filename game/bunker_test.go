package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBunkersLayout(t *testing.T) {
	cfg := testConfig()
	b := NewBunkers(cfg)

	// 6 + 8 + 8 + 4 cells per bunker
	assert.Equal(t, 5*26, b.Len())

	first := b.Cells()[0]
	assert.Equal(t, Vec2{-536, -366}, first.Pos)
	assert.Equal(t, 0, first.Bunker)

	for _, c := range b.Cells() {
		assert.Zero(t, c.Damage)
		assert.True(t, c.Alive)
	}
}

func TestBunkerHitDestroysAfterMaxDamage(t *testing.T) {
	cfg := testConfig()
	b := NewBunkers(cfg)

	assert.False(t, b.Hit(0))
	assert.Equal(t, uint8(1), b.Cells()[0].Damage)
	assert.False(t, b.Hit(0))
	assert.Equal(t, uint8(2), b.Cells()[0].Damage)
	assert.True(t, b.Hit(0), "damage above the maximum removes the cell")
	assert.False(t, b.Cells()[0].Alive)

	// Dead cells take no more hits and do not collide
	assert.False(t, b.Hit(0))
	assert.Equal(t, -1, b.FirstOverlap(Vec2{-536, -366}, Vec2{2, 2}))

	b.Compact()
	assert.Equal(t, 5*26-1, b.Len())
}

func TestBunkerResetRepairs(t *testing.T) {
	cfg := testConfig()
	b := NewBunkers(cfg)
	for i := 0; i < 3; i++ {
		b.Hit(0)
		b.Hit(5)
	}
	b.Compact()
	require.Equal(t, 5*26-2, b.Len())

	b.Reset()

	assert.Equal(t, 5*26, b.Len())
	for _, c := range b.Cells() {
		assert.Zero(t, c.Damage)
	}
}

func TestBunkerFirstOverlapUsesStorageOrder(t *testing.T) {
	cfg := testConfig()
	b := NewBunkers(cfg)

	// A wide box covering the whole first bunker matches its first cell
	idx := b.FirstOverlap(Vec2{-496, -390}, Vec2{200, 200})
	assert.Equal(t, 0, idx)

	assert.Equal(t, -1, b.FirstOverlap(Vec2{-372, 0}, Vec2{8, 16}))
}
