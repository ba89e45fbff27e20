// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// INVENTORY SERVICE
// =============================================================================

const itemColumns = `id, name, quantity, unit, category, expiry_date, notes,
	created_at, updated_at`

// ListItems returns a page of inventory items, alphabetical by name.
func (m *Mock) ListItems(ctx context.Context, filter model.InventoryFilter) (model.PaginatedResult[model.InventoryItem], error) {
	var zero model.PaginatedResult[model.InventoryItem]
	if err := m.sleep(ctx, latencyRead); err != nil {
		return zero, err
	}

	where := ""
	var args []any
	if filter.Category != "" {
		where = " WHERE category = ?"
		args = append(args, filter.Category)
	}

	var total int
	if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inventory_items"+where, args...).Scan(&total); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(filter.Limit)

	rows, err := m.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM inventory_items"+where+
			" ORDER BY name COLLATE NOCASE LIMIT ? OFFSET ?",
		append(args, limit, (page-1)*limit)...)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return zero, err
	}
	return pageOf(items, total, page, limit), nil
}

// GetItem returns one inventory item by id.
func (m *Mock) GetItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}
	return m.getItem(ctx, id)
}

func (m *Mock) getItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	row := m.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM inventory_items WHERE id = ?", id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem stores a new item with backend-assigned id and timestamps.
func (m *Mock) CreateItem(ctx context.Context, in model.InventoryItemInput) (*model.InventoryItem, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	item := model.InventoryItem{
		ID:        m.ids.NewID("item"),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Category:  in.Category,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.ExpiryDate != nil {
		t := in.ExpiryDate.UTC()
		item.ExpiryDate = &t
	}

	if err := m.insertItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies the patch and refreshes UpdatedAt.
func (m *Mock) UpdateItem(ctx context.Context, id string, patch model.InventoryItemPatch) (*model.InventoryItem, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, err := m.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ExpiryDate != nil {
		t := patch.ExpiryDate.UTC()
		item.ExpiryDate = &t
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	item.UpdatedAt = m.now().UTC()

	_, err = m.db.ExecContext(ctx, `
		UPDATE inventory_items SET name = ?, quantity = ?, unit = ?,
			category = ?, expiry_date = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		item.Name, item.Quantity, item.Unit, item.Category,
		expiryArg(item.ExpiryDate), item.Notes, unixNano(item.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return item, nil
}

// DeleteItem removes the item.
func (m *Mock) DeleteItem(ctx context.Context, id string) error {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return err
	}

	res, err := m.db.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpiringItems returns items expiring within the window, soonest first.
// Already-expired items are excluded.
func (m *Mock) ExpiringItems(ctx context.Context, withinDays int) ([]model.InventoryItem, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	cutoff := now.Add(time.Duration(withinDays) * 24 * time.Hour)

	rows, err := m.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM inventory_items"+
			" WHERE expiry_date IS NOT NULL AND expiry_date > ? AND expiry_date <= ?"+
			" ORDER BY expiry_date ASC",
		unixNano(now), unixNano(cutoff))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// =============================================================================
// ITEM SCANNING
// =============================================================================

// expiryArg converts an optional expiry date into a nullable column value.
func expiryArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return unixNano(*t)
}

func (m *Mock) insertItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, item.Unit, item.Category,
		expiryArg(item.ExpiryDate), item.Notes,
		unixNano(item.CreatedAt), unixNano(item.UpdatedAt))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// scanItem reads one inventory item row.
func scanItem(row rowScanner) (*model.InventoryItem, error) {
	var item model.InventoryItem
	var expiry sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit,
		&item.Category, &expiry, &item.Notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	if expiry.Valid {
		t := fromUnixNano(expiry.Int64)
		item.ExpiryDate = &t
	}
	item.CreatedAt = fromUnixNano(createdAt)
	item.UpdatedAt = fromUnixNano(updatedAt)
	return &item, nil
}

// scanItems drains a result set into a slice.
func scanItems(rows *sql.Rows) ([]model.InventoryItem, error) {
	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return items, nil
}
