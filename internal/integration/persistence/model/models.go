package model

// All returns every model managed by the schema migration, in dependency order.
func All() []any {
	return []any{
		&TransactionModel{},
		&TransactionTagModel{},
		&BudgetModel{},
		&GoalModel{},
	}
}
