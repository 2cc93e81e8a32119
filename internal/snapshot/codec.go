package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/repository"
)

// IsEmpty reports whether a stack should be left out of a snapshot.
func IsEmpty(item *ItemStack) bool {
	return item == nil || domain.IsAirType(item.Type) || item.Amount <= 0
}

// EncodeInventory flattens numbered slots in index order, then the
// equipment positions in domain.EquipmentKinds order at slot 0.
func EncodeInventory(name string, inv Inventory) []repository.SlotRow {
	rows := encodeSlots(name, inv)
	for _, kind := range domain.EquipmentKinds {
		item := inv.Equipment(kind)
		if IsEmpty(item) {
			continue
		}
		rows = append(rows, encodeItem(name, kind, domain.EquipmentSlotIndex, item))
	}
	return rows
}

// EncodeEnderChest flattens the ender chest slots in index order.
func EncodeEnderChest(name string, c Container) []repository.SlotRow {
	return encodeSlots(name, c)
}

func encodeSlots(name string, c Container) []repository.SlotRow {
	rows := []repository.SlotRow{}
	for i := 0; i < c.Size(); i++ {
		item := c.Item(i)
		if IsEmpty(item) {
			continue
		}
		rows = append(rows, encodeItem(name, domain.KindSlot, i, item))
	}
	return rows
}

func encodeItem(name string, kind domain.ContainerKind, slot int, item *ItemStack) repository.SlotRow {
	enchants := item.Enchants
	if enchants == nil {
		enchants = map[string]int{}
	}
	lore := item.Lore
	if lore == nil {
		lore = []string{}
	}
	// map[string]int and []string always marshal.
	enchantsJSON, _ := json.Marshal(enchants)
	loreJSON, _ := json.Marshal(lore)

	var data any
	if item.Data != nil {
		data = *item.Data
	}
	unbreakable := 0
	if item.Unbreakable {
		unbreakable = 1
	}

	return repository.SlotRow{
		Name:        name,
		Kind:        string(kind),
		Slot:        slot,
		Type:        item.Type,
		Amount:      item.Amount,
		Damage:      max(item.Damage, 0),
		DisplayName: item.DisplayName,
		Enchants:    string(enchantsJSON),
		Lore:        string(loreJSON),
		Unbreakable: unbreakable,
		Data:        data,
	}
}

// decoder turns stored rows back into records, collecting a DecodeFailure
// for every field it had to default.
type decoder struct {
	table    string
	xuid     string
	failures []DecodeFailure
}

func (d *decoder) fail(rowID int64, field string, err error) {
	d.failures = append(d.failures, DecodeFailure{
		XUID:  d.xuid,
		Table: d.table,
		RowID: rowID,
		Field: field,
		Err:   err,
	})
}

func (d *decoder) decode(row repository.SlotRow) domain.SlotRecord {
	rec := domain.SlotRecord{
		XUID:       row.XUID,
		PlayerName: row.Name,
		Kind:       domain.KindSlot,
	}
	if rec.XUID == "" {
		rec.XUID = d.xuid
	}

	if d.table == domain.TableInventories {
		if k := domain.ContainerKind(row.Kind); k.Valid() {
			rec.Kind = k
		} else {
			d.fail(row.ID, FieldSlotType, fmt.Errorf("%s: %q", ErrMsgUnknownKind, row.Kind))
		}
	}

	rec.Slot = d.intField(row.ID, FieldSlot, row.Slot, DefaultSlot, 0)
	if rec.Kind.IsEquipment() && rec.Slot != domain.EquipmentSlotIndex {
		d.fail(row.ID, FieldSlot, fmt.Errorf("%s: %s at %d", ErrMsgEquipmentSlot, rec.Kind, rec.Slot))
		rec.Slot = domain.EquipmentSlotIndex
	}
	rec.Amount = d.intField(row.ID, FieldAmount, row.Amount, DefaultAmount, 1)
	rec.Damage = d.intField(row.ID, FieldDamage, row.Damage, DefaultDamage, 0)
	rec.Unbreakable = d.intField(row.ID, FieldUnbreakable, row.Unbreakable, 0, math.MinInt32) != 0

	rec.Type = textValue(row.Type)
	if rec.Type == "" {
		rec.Type = domain.ItemTypeAir
	}
	rec.DisplayName = textValue(row.DisplayName)

	rec.Enchants = map[string]int{}
	if raw, ok := jsonText(row.Enchants); ok {
		if err := json.Unmarshal([]byte(raw), &rec.Enchants); err != nil || rec.Enchants == nil {
			rec.Enchants = map[string]int{}
			d.fail(row.ID, FieldEnchants, errOrNull(err))
		}
	}

	rec.Lore = []string{}
	if raw, ok := jsonText(row.Lore); ok {
		if err := json.Unmarshal([]byte(raw), &rec.Lore); err != nil || rec.Lore == nil {
			rec.Lore = []string{}
			d.fail(row.ID, FieldLore, errOrNull(err))
		}
	}

	if row.Data != nil {
		if v, err := toInt64(row.Data); err == nil {
			rec.Data = &v
		} else {
			d.fail(row.ID, FieldData, err)
		}
	}

	return rec
}

// intField reads an integer column. Values below minVal are malformed and
// fall back to def like unreadable ones.
func (d *decoder) intField(rowID int64, field string, v any, def, minVal int) int {
	if v == nil {
		return def
	}
	n, err := toInt64(v)
	if err != nil {
		d.fail(rowID, field, err)
		return def
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		d.fail(rowID, field, fmt.Errorf("%d out of range", n))
		return def
	}
	if n < int64(minVal) {
		d.fail(rowID, field, fmt.Errorf("%s: %d < %d", ErrMsgBelowMinimum, n, minVal))
		return def
	}
	return int(n)
}

func errOrNull(err error) error {
	if err != nil {
		return err
	}
	return errors.New("decoded to null")
}

// jsonText returns the stored JSON text unless it is one of the markers
// that mean "nothing here".
func jsonText(v any) (string, bool) {
	s := strings.TrimSpace(textValue(v))
	if emptyJSONMarkers[s] {
		return "", false
	}
	return s, true
}

func textValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, fmt.Errorf("%s: %v", ErrMsgNotNumeric, t)
		}
		return int64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string, []byte:
		s := strings.TrimSpace(textValue(t))
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q", ErrMsgNotNumeric, s)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s: %T", ErrMsgNotNumeric, v)
	}
}

// Decode converts stored rows of table into records. Rows are decoded
// independently; a malformed field never drops its row or any other row.
func Decode(table, xuid string, rows []repository.SlotRow) Result {
	d := &decoder{table: table, xuid: xuid}
	records := make([]domain.SlotRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, d.decode(row))
	}
	return Result{Records: records, Failures: d.failures}
}
