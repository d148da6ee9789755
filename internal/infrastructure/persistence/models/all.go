package models

// All lists every model, in dependency order, for AutoMigrate on the
// SQLite development driver. PostgreSQL uses the SQL migrations.
func All() []any {
	return []any{
		&UserModel{},
		&TransportModel{},
		&CustomerModel{},
		&PrinterModel{},
		&CurveModel{},
		&ProfileModel{},
		&DieCutBlockModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
		&ServiceOrderModel{},
		&ChannelModel{},
		&NotificationModel{},
	}
}
