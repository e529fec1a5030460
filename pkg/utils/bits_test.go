package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0), AllOnes[uint32](0))
	assert.Equal(t, uint32(0b1), AllOnes[uint32](1))
	assert.Equal(t, uint32(0b11111), AllOnes[uint32](5))
	assert.Equal(t, uint32(0xfff), AllOnes[uint32](12))
	assert.Equal(t, uint32(0xffffffff), AllOnes[uint32](32))
}

func TestBitView_Read(t *testing.T) {
	// addi x5, x10, 1
	value := uint32(0x00150293)
	view := CreateBitView(&value)

	assert.Equal(t, uint32(0x13), view.Read(0, 7))
	assert.Equal(t, uint32(5), view.Read(7, 5))
	assert.Equal(t, uint32(10), view.Read(15, 5))
	assert.Equal(t, uint32(1), view.Read(20, 12))
}

func TestBitView_Write_MergesWithExistingBits(t *testing.T) {
	value := uint32(0x000000f0)
	view := CreateBitView(&value)

	view.Write(0b1010, 4, 4)

	// Write ORs, it does not clear first
	assert.Equal(t, uint32(0x000000f0), value)
}

func TestBitView_Write_TruncatesOversizedValues(t *testing.T) {
	value := uint32(0)
	view := CreateBitView(&value)

	view.Write(0x1ff, 4, 4)

	assert.Equal(t, uint32(0x000000f0), value)
}

func TestBitView_Overwrite(t *testing.T) {
	value := uint32(0xffffffff)
	view := CreateBitView(&value)

	view.Overwrite(0b0101, 4, 4)

	assert.Equal(t, uint32(0xffffff5f), value)
}

func TestBitView_ClearBits(t *testing.T) {
	value := uint32(0xffffffff)
	view := CreateBitView(&value)

	view.ClearBits(8, 8)

	assert.Equal(t, uint32(0xffff00ff), value)
}

func TestBitView_SetAndClearBit(t *testing.T) {
	value := uint32(0)
	view := CreateBitView(&value)

	view.SetBit(31)
	assert.Equal(t, uint32(0x80000000), value)

	view.ClearBit(31)
	assert.Equal(t, uint32(0), value)
}

func TestBitView_SizeofBits(t *testing.T) {
	value := uint32(0)
	assert.Equal(t, 32, CreateBitView(&value).SizeofBits())
}
