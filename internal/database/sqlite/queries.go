package sqlite

const (
	upsertItemSQL = `INSERT INTO items (external_id, name, touched_at)
VALUES (?, ?, ?)
ON CONFLICT (external_id) DO UPDATE
SET name = CASE WHEN excluded.name = 'TBD' THEN items.name ELSE excluded.name END,
    touched_at = excluded.touched_at
RETURNING pk`

	getItemSQL = `SELECT external_id, name FROM items WHERE external_id = ?`

	listPlaceholderIDsSQL = `SELECT external_id FROM items WHERE name = 'TBD' ORDER BY external_id`

	insertRecipeSQL = `INSERT INTO recipes (output_ref, ingredient_hash) VALUES (?, ?)
ON CONFLICT (output_ref, ingredient_hash) DO NOTHING`

	getRecipeRefSQL = `SELECT pk FROM recipes WHERE output_ref = ? AND ingredient_hash = ?`

	insertIngredientSQL = `INSERT INTO ingredients (recipe_ref, item_ref, amount) VALUES (?, ?, ?)
ON CONFLICT (recipe_ref, item_ref) DO NOTHING`

	listCraftedIngredientRowsSQL = `SELECT r.pk, o.external_id, o.name, ii.external_id, ing.amount
FROM recipes r
JOIN items o ON o.pk = r.output_ref
JOIN ingredients ing ON ing.recipe_ref = r.pk
JOIN items ii ON ii.pk = ing.item_ref
WHERE r.pk IN (
    SELECT ref.recipe_ref
    FROM ingredients ref
    JOIN items target ON target.pk = ref.item_ref
    WHERE target.external_id = ?
)
ORDER BY r.pk, ing.pk`

	upsertListingSQL = `INSERT INTO listings (item_ref, observed_at, highest_buy_order, lowest_sell_order, is_static)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (item_ref) DO UPDATE
SET observed_at = excluded.observed_at,
    highest_buy_order = excluded.highest_buy_order,
    lowest_sell_order = excluded.lowest_sell_order,
    is_static = excluded.is_static
RETURNING pk`

	getListingSQL = `SELECT i.external_id, l.observed_at, l.highest_buy_order, l.lowest_sell_order, l.is_static
FROM listings l
JOIN items i ON i.pk = l.item_ref
WHERE i.external_id = ?`
)
