package slot

import (
	"github.com/ashduino101/polyparser/pkg/errors"
	"github.com/ashduino101/polyparser/pkg/layout"
)

// Format version ceilings for the slot file and the physics engine version
// recorded inside it.
const (
	MaxSlotVersion    = 3
	MaxPhysicsVersion = 1
)

// SaveSlot is the decoded representation of a .slot file. The bridge payload
// is expanded through the shared bridge codec; the thumbnail stays an opaque
// byte blob, nil when the slot carries none.
type SaveSlot struct {
	Version            int32
	PhysicsVersion     int32
	SlotID             int32
	DisplayName        string
	FileName           string
	Budget             int32
	LastWriteTimeTicks int64
	Bridge             layout.Bridge
	Thumbnail          []byte
	UnlimitedMaterials bool
	UnlimitedBudget    bool
}

// Decode decodes a complete .slot stream. The slot schema is fixed: every
// field is asserted by (category, name) before its value is consumed, and
// any mismatch fails with the expected and observed identities.
func Decode(data []byte, opts layout.Options) (*SaveSlot, error) {
	opts = opts.Normalize()
	logger, guard := opts.Logger, opts.Guard

	c := NewCursor(data)
	slot := &SaveSlot{}

	c.EnterNode()

	if err := c.Expect(KindInteger, "m_Version"); err != nil {
		return nil, err
	}
	slot.Version = c.Int32()
	if err := guard.CheckVersion("slot version", int(slot.Version)); err != nil {
		return nil, err
	}
	logger.Infof("save slot version: %d", slot.Version)
	if slot.Version > MaxSlotVersion {
		logger.Warn("slot saved with a newer version of the slot format, this may cause problems")
	}

	if err := c.Expect(KindInteger, "m_PhysicsVersion"); err != nil {
		return nil, err
	}
	slot.PhysicsVersion = c.Int32()
	logger.Infof("save slot physics version: %d", slot.PhysicsVersion)
	if slot.PhysicsVersion > MaxPhysicsVersion {
		logger.Warn("save slot physics version is newer than fully supported, bugs may occur")
	}

	if err := c.Expect(KindInteger, "m_SlotID"); err != nil {
		return nil, err
	}
	slot.SlotID = c.Int32()
	logger.Infof("save slot id: %d", slot.SlotID)

	if err := c.Expect(KindString, "m_DisplayName"); err != nil {
		return nil, err
	}
	slot.DisplayName = c.ReadString()
	logger.Infof("save slot name: %s", slot.DisplayName)

	if err := c.Expect(KindString, "m_SlotFilename"); err != nil {
		return nil, err
	}
	slot.FileName = c.ReadString()
	logger.Infof("save slot filename: %s", slot.FileName)

	if err := c.Expect(KindInteger, "m_Budget"); err != nil {
		return nil, err
	}
	slot.Budget = c.Int32()
	if err := guard.CheckCurrency("slot budget", int(slot.Budget)); err != nil {
		return nil, err
	}
	logger.Infof("save slot budget: $%d", slot.Budget)

	if err := c.Expect(KindInteger, "m_LastWriteTimeTicks"); err != nil {
		return nil, err
	}
	slot.LastWriteTimeTicks = c.Int64()
	logger.Infof("save slot last write time: %s", FormatTicks(slot.LastWriteTimeTicks))

	// The bridge rides in its own node as a primitive array of raw bytes,
	// decoded by the same codec the layout format uses.
	c.EnterNode()
	if err := c.Expect(KindPrimitiveArray, ""); err != nil {
		return nil, err
	}
	bridgeData := c.PrimitiveArray()
	if err := c.Err(); err != nil {
		return nil, err
	}
	if err := guard.CheckBlob("bridge data size", len(bridgeData)); err != nil {
		return nil, err
	}
	logger.Infof("loading bridge data of %d bytes", len(bridgeData))
	bridge, err := layout.DecodeBridge(bridgeData, opts)
	if err != nil {
		return nil, err
	}
	slot.Bridge = *bridge
	if err := c.Expect(KindEndOfNode, ""); err != nil {
		return nil, err
	}

	// The thumbnail field is either a Null entry or a node wrapping another
	// primitive array.
	pos := c.Pos()
	thumb := c.Peek()
	if err := c.Err(); err != nil {
		return nil, err
	}
	if thumb.Name != "m_Thumb" {
		return nil, errors.At(errors.ErrCodeSchemaMismatch, pos,
			"expected entry named %q, got %s %q", "m_Thumb", thumb.Kind, thumb.Name)
	}
	switch thumb.Kind {
	case KindNull:
		logger.Info("no thumbnail in save slot")
	default:
		c.typeDescriptor()
		nodeID := c.Int32()
		logger.Debugf("entering node id %d", nodeID)
		if err := c.Expect(KindPrimitiveArray, ""); err != nil {
			return nil, err
		}
		slot.Thumbnail = c.PrimitiveArray()
		if err := c.Err(); err != nil {
			return nil, err
		}
		if err := guard.CheckBlob("thumbnail size", len(slot.Thumbnail)); err != nil {
			return nil, err
		}
		logger.Infof("thumbnail data size: %d", len(slot.Thumbnail))
		if err := c.Expect(KindEndOfNode, ""); err != nil {
			return nil, err
		}
	}

	if err := c.Expect(KindBoolean, "m_UsingUnlimitedMaterials"); err != nil {
		return nil, err
	}
	slot.UnlimitedMaterials = c.Bool()
	logger.Infof("unlimited materials: %t", slot.UnlimitedMaterials)

	if err := c.Expect(KindBoolean, "m_UsingUnlimitedBudget"); err != nil {
		return nil, err
	}
	slot.UnlimitedBudget = c.Bool()
	logger.Infof("unlimited budget: %t", slot.UnlimitedBudget)

	if err := c.Expect(KindEndOfNode, ""); err != nil {
		return nil, err
	}
	return slot, c.Err()
}
