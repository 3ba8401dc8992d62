//go:build !tinygo

package regs

import (
	"encoding/binary"
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

//DevMem is the device node used to reach physical addresses.
const DevMem = "/dev/mem"

//Layout gives the file offset at which each block starts.
type Layout [NumBlocks]int64

var (
	//DeviceLayout maps blocks at their physical addresses, for use with DevMem.
	DeviceLayout = Layout{
		RSIM: int64(RSIMBase),
		SIM:  int64(SIMBase),
		MCG:  int64(MCGBase),
	}
	//ImageLayout packs the blocks page aligned into a small register image file.
	ImageLayout = Layout{
		RSIM: 0x0000,
		SIM:  0x1000,
		MCG:  0x3000,
	}
)

//ImageSize is the minimum size of a file laid out with ImageLayout
const ImageSize = 0x4000

//MappedBus reaches a block through a memory mapping of a file.
//Accesses go through the mapped bytes in little endian order.
type MappedBus struct {
	mem  mmap.MMap
	offs int
	size int
}

//MapBus maps size bytes of f starting at base. The mapping itself starts at the page boundary below base.
func MapBus(f *os.File, base int64, size int, writable bool) (*MappedBus, error) {
	pageSize := int64(os.Getpagesize())
	mapAddr := base &^ (pageSize - 1)
	offs := int(base - mapAddr)
	prot := mmap.RDONLY
	if writable {
		prot = mmap.RDWR
	}
	mm, err := mmap.MapRegion(f, size+offs, prot, 0, mapAddr)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("map region %08x+%d", base, size))
	}
	return &MappedBus{mem: mm, offs: offs, size: size}, nil
}

//Load reads the register at offset.
func (b *MappedBus) Load(offset uint32, width Width) uint32 {
	o := b.offs + int(offset)
	switch width {
	case Width8:
		return uint32(b.mem[o])
	default:
		return binary.LittleEndian.Uint32(b.mem[o : o+4])
	}
}

//Store writes the register at offset.
func (b *MappedBus) Store(offset uint32, width Width, value uint32) {
	o := b.offs + int(offset)
	switch width {
	case Width8:
		b.mem[o] = uint8(value)
	default:
		binary.LittleEndian.PutUint32(b.mem[o:o+4], value)
	}
}

//Flush writes back pending changes to the underlying file.
func (b *MappedBus) Flush() error {
	return b.mem.Flush()
}

//Close unmaps the bus.
func (b *MappedBus) Close() error {
	if b.mem == nil {
		return nil
	}
	err := b.mem.Unmap()
	b.mem = nil
	return err
}

//Mapped holds one MappedBus per block.
type Mapped struct {
	Buses [NumBlocks]*MappedBus
}

//Open maps every block of the file at path according to layout.
func Open(path string, layout Layout, writable bool) (*Mapped, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR | os.O_SYNC
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(err, "open registers")
	}
	// The mappings stay valid after the file is closed.
	defer f.Close()
	m := &Mapped{}
	for block := RSIM; block < NumBlocks; block++ {
		bus, err := MapBus(f, layout[block], block.Size(), writable)
		if err != nil {
			m.Close()
			return nil, errors.Wrap(err, block.String())
		}
		m.Buses[block] = bus
	}
	return m, nil
}

//Flush flushes every mapped block.
func (m *Mapped) Flush() error {
	for _, bus := range m.Buses {
		if bus == nil {
			continue
		}
		if err := bus.Flush(); err != nil {
			return errors.Wrap(err, "flush registers")
		}
	}
	return nil
}

//Close unmaps every block.
func (m *Mapped) Close() error {
	var first error
	for i, bus := range m.Buses {
		if bus == nil {
			continue
		}
		if err := bus.Close(); err != nil && first == nil {
			first = errors.Wrap(err, BlockID(i).String())
		}
		m.Buses[i] = nil
	}
	return first
}

//WriteImage writes a zero filled register image of ImageSize bytes holding values at ImageLayout positions.
func WriteImage(path string, values map[Register]uint32) error {
	buf := make([]byte, ImageSize)
	for r, v := range values {
		o := ImageLayout[r.Block] + int64(r.Offset)
		switch r.Width {
		case Width8:
			buf[o] = uint8(v)
		default:
			binary.LittleEndian.PutUint32(buf[o:o+4], v)
		}
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrap(err, "write image")
	}
	return nil
}

// Interface checks
var _ Bus = (*MappedBus)(nil)
