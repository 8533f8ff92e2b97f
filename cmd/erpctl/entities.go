package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/internal/render"
)

// listFn and friends are the gateway method shapes the command table is
// built from.
type (
	listFn   func(ctx context.Context, params url.Values) (json.RawMessage, error)
	getFn    func(ctx context.Context, id string) (json.RawMessage, error)
	createFn func(ctx context.Context, data any) (json.RawMessage, error)
	updateFn func(ctx context.Context, id string, data any) (json.RawMessage, error)
	plainFn  func(ctx context.Context) (json.RawMessage, error)
)

type entityOp struct {
	use   string
	short string
	nArgs int
	run   func(ctx context.Context, c *gateway.Client, args []string, params url.Values, data json.RawMessage) (json.RawMessage, error)
}

type entity struct {
	use   string
	short string
	ops   []entityOp
}

func listOp(f func(c *gateway.Client) listFn) entityOp {
	return entityOp{
		use:   "list",
		short: "List records, filtered by --param",
		run: func(ctx context.Context, c *gateway.Client, _ []string, params url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, params)
		},
	}
}

func getOp(f func(c *gateway.Client) getFn) entityOp {
	return entityOp{
		use:   "get <id>",
		short: "Show one record",
		nArgs: 1,
		run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, args[0])
		},
	}
}

func createOp(f func(c *gateway.Client) createFn) entityOp {
	return entityOp{
		use:   "create",
		short: "Create a record from --data",
		run: func(ctx context.Context, c *gateway.Client, _ []string, _ url.Values, data json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, data)
		},
	}
}

func updateOp(f func(c *gateway.Client) updateFn) entityOp {
	return entityOp{
		use:   "update <id>",
		short: "Update a record from --data",
		nArgs: 1,
		run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, data json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, args[0], data)
		},
	}
}

func deleteOp(f func(c *gateway.Client) getFn) entityOp {
	return entityOp{
		use:   "delete <id>",
		short: "Delete a record",
		nArgs: 1,
		run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, args[0])
		},
	}
}

// verbOp covers id-only workflow verbs like approve or dispatch.
func verbOp(use, short string, f func(c *gateway.Client) getFn) entityOp {
	return entityOp{
		use:   use + " <id>",
		short: short,
		nArgs: 1,
		run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, args[0])
		},
	}
}

// verbDataOp covers workflow verbs that carry a payload.
func verbDataOp(use, short string, f func(c *gateway.Client) updateFn) entityOp {
	return entityOp{
		use:   use + " <id>",
		short: short,
		nArgs: 1,
		run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, data json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, args[0], data)
		},
	}
}

func plainOp(use, short string, f func(c *gateway.Client) plainFn) entityOp {
	return entityOp{
		use:   use,
		short: short,
		run: func(ctx context.Context, c *gateway.Client, _ []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx)
		},
	}
}

// listAs and createAs name list- and create-shaped ops that are not the
// group's primary list or create.
func listAs(use, short string, f func(c *gateway.Client) listFn) entityOp {
	return entityOp{
		use:   use,
		short: short,
		run: func(ctx context.Context, c *gateway.Client, _ []string, params url.Values, _ json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, params)
		},
	}
}

func createAs(use, short string, f func(c *gateway.Client) createFn) entityOp {
	return entityOp{
		use:   use,
		short: short,
		run: func(ctx context.Context, c *gateway.Client, _ []string, _ url.Values, data json.RawMessage) (json.RawMessage, error) {
			return f(c)(ctx, data)
		},
	}
}

func entities() []entity {
	return []entity{
		{
			use: "dashboard", short: "Dashboard metrics",
			ops: []entityOp{
				plainOp("overview", "Tenant overview metrics", func(c *gateway.Client) plainFn { return c.DashboardOverview }),
				listAs("analytics", "Analytics metrics", func(c *gateway.Client) listFn { return c.Analytics }),
				listAs("sales-trends", "Sales trends over time", func(c *gateway.Client) listFn { return c.SalesTrends }),
				plainOp("material-breakdown", "Volume by material type", func(c *gateway.Client) plainFn { return c.MaterialTypeBreakdown }),
				plainOp("top-clients", "Top clients by volume", func(c *gateway.Client) plainFn { return c.TopClients }),
				plainOp("recent-activities", "Recent activity feed", func(c *gateway.Client) plainFn { return c.RecentActivities }),
			},
		},
		{
			use: "clients", short: "Client accounts",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Clients }),
				getOp(func(c *gateway.Client) getFn { return c.ClientByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateClient }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateClient }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteClient }),
				verbOp("approve", "Approve a pending client", func(c *gateway.Client) getFn { return c.ApproveClient }),
				verbOp("activate", "Activate a client", func(c *gateway.Client) getFn { return c.ActivateClient }),
				verbOp("deactivate", "Deactivate a client", func(c *gateway.Client) getFn { return c.DeactivateClient }),
			},
		},
		{
			use: "vendors", short: "Vendor accounts",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Vendors }),
				getOp(func(c *gateway.Client) getFn { return c.VendorByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateVendor }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateVendor }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteVendor }),
			},
		},
		{
			use: "products", short: "Product catalog",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Products }),
				getOp(func(c *gateway.Client) getFn { return c.ProductByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateProduct }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateProduct }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteProduct }),
				verbOp("approve", "Approve a pending product", func(c *gateway.Client) getFn { return c.ApproveProduct }),
				verbOp("activate", "Activate a product", func(c *gateway.Client) getFn { return c.ActivateProduct }),
				verbOp("deactivate", "Deactivate a product", func(c *gateway.Client) getFn { return c.DeactivateProduct }),
			},
		},
		{
			use: "services", short: "Service catalog",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Services }),
				getOp(func(c *gateway.Client) getFn { return c.ServiceByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateService }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateService }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteService }),
				verbOp("approve", "Approve a pending service", func(c *gateway.Client) getFn { return c.ApproveService }),
				verbOp("activate", "Activate a service", func(c *gateway.Client) getFn { return c.ActivateService }),
				verbOp("deactivate", "Deactivate a service", func(c *gateway.Client) getFn { return c.DeactivateService }),
			},
		},
		{
			use: "leads", short: "Sales leads",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Leads }),
				getOp(func(c *gateway.Client) getFn { return c.LeadByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateLead }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateLead }),
				verbDataOp("qualify", "Mark a lead qualified", func(c *gateway.Client) updateFn { return c.QualifyLead }),
				verbDataOp("disqualify", "Mark a lead disqualified", func(c *gateway.Client) updateFn { return c.DisqualifyLead }),
				verbDataOp("convert", "Convert a lead to a client", func(c *gateway.Client) updateFn { return c.ConvertLead }),
			},
		},
		{
			use: "deals", short: "Deals pipeline",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Deals }),
				getOp(func(c *gateway.Client) getFn { return c.DealByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateDeal }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateDeal }),
				verbDataOp("move-stage", "Move a deal to another stage", func(c *gateway.Client) updateFn { return c.MoveDealStage }),
				verbDataOp("finalize", "Finalize a deal", func(c *gateway.Client) updateFn { return c.FinalizeDeal }),
			},
		},
		{
			use: "jobs", short: "Collection jobs",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Jobs }),
				getOp(func(c *gateway.Client) getFn { return c.JobByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateJob }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateJob }),
				{
					use: "status <id> <status>", short: "Set job status", nArgs: 2,
					run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
						return c.UpdateJobStatus(ctx, args[0], args[1])
					},
				},
			},
		},
		{
			use: "invoices", short: "Invoices",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Invoices }),
				getOp(func(c *gateway.Client) getFn { return c.InvoiceByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateInvoice }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateInvoice }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteInvoice }),
				verbOp("approve", "Approve an invoice", func(c *gateway.Client) getFn { return c.ApproveInvoice }),
				verbDataOp("payment", "Record a payment against an invoice", func(c *gateway.Client) updateFn { return c.RecordPayment }),
				verbOp("cancel", "Cancel an invoice", func(c *gateway.Client) getFn { return c.CancelInvoice }),
			},
		},
		{
			use: "payments", short: "Payments and cheques",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Payments }),
				getOp(func(c *gateway.Client) getFn { return c.PaymentByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreatePayment }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeletePayment }),
				verbDataOp("cheque-status", "Update a cheque's status", func(c *gateway.Client) updateFn { return c.UpdateChequeStatus }),
				plainOp("post-dated-cheques", "List post-dated cheques", func(c *gateway.Client) plainFn { return c.PostDatedCheques }),
			},
		},
		{
			use: "documents", short: "Document storage",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Documents }),
				getOp(func(c *gateway.Client) getFn { return c.DocumentByID }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteDocument }),
				verbOp("deactivate", "Deactivate a document", func(c *gateway.Client) getFn { return c.DeactivateDocument }),
			},
		},
		{
			use: "inbound", short: "Goods receipt notes",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.GRNs }),
				getOp(func(c *gateway.Client) getFn { return c.GRNByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateGRN }),
				verbOp("approve", "Approve a GRN", func(c *gateway.Client) getFn { return c.ApproveGRN }),
				verbDataOp("reject", "Reject a GRN", func(c *gateway.Client) updateFn { return c.RejectGRN }),
			},
		},
		{
			use: "outbound", short: "Outbound deliveries",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Outbounds }),
				getOp(func(c *gateway.Client) getFn { return c.OutboundByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateOutbound }),
				verbOp("dispatch", "Dispatch a delivery", func(c *gateway.Client) getFn { return c.DispatchOutbound }),
				verbDataOp("complete", "Complete a delivery", func(c *gateway.Client) updateFn { return c.CompleteDelivery }),
			},
		},
		{
			use: "warehouses", short: "Warehouses",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Warehouses }),
				getOp(func(c *gateway.Client) getFn { return c.WarehouseByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateWarehouse }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateWarehouse }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteWarehouse }),
				verbOp("activate", "Activate a warehouse", func(c *gateway.Client) getFn { return c.ActivateWarehouse }),
				verbOp("deactivate", "Deactivate a warehouse", func(c *gateway.Client) getFn { return c.DeactivateWarehouse }),
			},
		},
		{
			use: "inventory", short: "Stock levels and lots",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Inventory }),
				listAs("lots", "List lots", func(c *gateway.Client) listFn { return c.Lots }),
				getOp(func(c *gateway.Client) getFn { return c.LotByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateLot }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateLot }),
				verbDataOp("adjust", "Adjust a lot's quantity", func(c *gateway.Client) updateFn { return c.AdjustLotQuantity }),
				verbOp("close", "Close a lot", func(c *gateway.Client) getFn { return c.CloseLot }),
				listAs("movements", "Stock movement history", func(c *gateway.Client) listFn { return c.StockMovements }),
				listAs("valuation", "Inventory valuation", func(c *gateway.Client) listFn { return c.InventoryValuation }),
			},
		},
		{
			use: "employees", short: "Employees",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Employees }),
				getOp(func(c *gateway.Client) getFn { return c.EmployeeByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateEmployee }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateEmployee }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteEmployee }),
				verbDataOp("terminate", "Terminate an employee", func(c *gateway.Client) updateFn { return c.TerminateEmployee }),
			},
		},
		{
			use: "vehicles", short: "Fleet vehicles",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Vehicles }),
				getOp(func(c *gateway.Client) getFn { return c.VehicleByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateVehicle }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateVehicle }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteVehicle }),
				{
					use: "status <id> <status>", short: "Set vehicle status", nArgs: 2,
					run: func(ctx context.Context, c *gateway.Client, args []string, _ url.Values, _ json.RawMessage) (json.RawMessage, error) {
						return c.UpdateVehicleStatus(ctx, args[0], args[1])
					},
				},
				verbDataOp("fuel-log", "Record a fuel log entry", func(c *gateway.Client) updateFn { return c.AddFuelLog }),
				verbDataOp("maintenance-log", "Record a maintenance log entry", func(c *gateway.Client) updateFn { return c.AddMaintenanceLog }),
			},
		},
		{
			use: "certificates", short: "Recycling certificates",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Certificates }),
				getOp(func(c *gateway.Client) getFn { return c.CertificateByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateCertificate }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteCertificate }),
				verbOp("verify", "Verify a certificate", func(c *gateway.Client) getFn { return c.VerifyCertificate }),
				plainOp("templates", "List certificate templates", func(c *gateway.Client) plainFn { return c.CertificateTemplates }),
				createAs("create-template", "Create a template from --data", func(c *gateway.Client) createFn { return c.CreateCertificateTemplate }),
				verbOp("template", "Show one template", func(c *gateway.Client) getFn { return c.CertificateTemplateByID }),
				verbDataOp("update-template", "Update a template from --data", func(c *gateway.Client) updateFn { return c.UpdateCertificateTemplate }),
			},
		},
		{
			use: "commissions", short: "Sales commissions",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Commissions }),
				getOp(func(c *gateway.Client) getFn { return c.CommissionByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateCommission }),
				createAs("calculate", "Calculate a commission from --data", func(c *gateway.Client) createFn { return c.CalculateCommission }),
				verbOp("approve", "Approve a commission", func(c *gateway.Client) getFn { return c.ApproveCommission }),
				verbOp("pay", "Mark a commission paid", func(c *gateway.Client) getFn { return c.PayCommission }),
				verbDataOp("reverse", "Reverse a commission", func(c *gateway.Client) updateFn { return c.ReverseCommission }),
				listAs("summary", "Commission summary", func(c *gateway.Client) listFn { return c.CommissionSummary }),
			},
		},
		{
			use: "accounting", short: "Ledger, expenses, and assets",
			ops: []entityOp{
				listAs("journal-entries", "List journal entries", func(c *gateway.Client) listFn { return c.JournalEntries }),
				verbOp("journal-entry", "Show one journal entry", func(c *gateway.Client) getFn { return c.JournalEntryByID }),
				createAs("create-journal-entry", "Create a journal entry from --data", func(c *gateway.Client) createFn { return c.CreateJournalEntry }),
				listAs("expenses", "List expenses", func(c *gateway.Client) listFn { return c.Expenses }),
				createAs("create-expense", "Create an expense from --data", func(c *gateway.Client) createFn { return c.CreateExpense }),
				verbOp("approve-expense", "Approve an expense", func(c *gateway.Client) getFn { return c.ApproveExpense }),
				listAs("fixed-assets", "List fixed assets", func(c *gateway.Client) listFn { return c.FixedAssets }),
				createAs("create-fixed-asset", "Create a fixed asset from --data", func(c *gateway.Client) createFn { return c.CreateFixedAsset }),
				createAs("calculate-depreciation", "Calculate depreciation from --data", func(c *gateway.Client) createFn { return c.CalculateDepreciation }),
				plainOp("bank-accounts", "List bank accounts", func(c *gateway.Client) plainFn { return c.BankAccounts }),
				createAs("create-bank-account", "Create a bank account from --data", func(c *gateway.Client) createFn { return c.CreateBankAccount }),
			},
		},
		{
			use: "roles", short: "Roles and permissions",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Roles }),
				getOp(func(c *gateway.Client) getFn { return c.RoleByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateRole }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateRole }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteRole }),
			},
		},
		{
			use: "users", short: "Tenant user accounts",
			ops: []entityOp{
				listOp(func(c *gateway.Client) listFn { return c.Users }),
				getOp(func(c *gateway.Client) getFn { return c.UserByID }),
				createOp(func(c *gateway.Client) createFn { return c.CreateUser }),
				updateOp(func(c *gateway.Client) updateFn { return c.UpdateUser }),
				deleteOp(func(c *gateway.Client) getFn { return c.DeleteUser }),
			},
		},
		{
			use: "settings", short: "Tenant settings",
			ops: []entityOp{
				plainOp("show", "Show the settings document", func(c *gateway.Client) plainFn { return c.Settings }),
				{
					use: "update", short: "Update settings from --data",
					run: func(ctx context.Context, c *gateway.Client, _ []string, _ url.Values, data json.RawMessage) (json.RawMessage, error) {
						return c.UpdateSettings(ctx, data)
					},
				},
				plainOp("material-types", "List material types", func(c *gateway.Client) plainFn { return c.MaterialTypes }),
				plainOp("currencies", "List currencies", func(c *gateway.Client) plainFn { return c.Currencies }),
				plainOp("taxes", "List taxes", func(c *gateway.Client) plainFn { return c.Taxes }),
				plainOp("payment-modes", "List payment modes", func(c *gateway.Client) plainFn { return c.PaymentModes }),
				plainOp("expense-categories", "List expense categories", func(c *gateway.Client) plainFn { return c.ExpenseCategories }),
			},
		},
		{
			use: "reports", short: "Operational reports",
			ops: []entityOp{
				listAs("sales", "Sales report", func(c *gateway.Client) listFn { return c.SalesReport }),
				listAs("invoices", "Invoice report", func(c *gateway.Client) listFn { return c.InvoiceReport }),
				listAs("inventory", "Inventory report", func(c *gateway.Client) listFn { return c.InventoryReport }),
				listAs("vat", "VAT report", func(c *gateway.Client) listFn { return c.VATReport }),
				listAs("deals", "Deal report", func(c *gateway.Client) listFn { return c.DealReport }),
				listAs("customer-ageing", "Customer ageing report", func(c *gateway.Client) listFn { return c.CustomerAgeingReport }),
				listAs("commissions", "Commission report", func(c *gateway.Client) listFn { return c.CommissionReport }),
				listAs("expenses", "Expense report", func(c *gateway.Client) listFn { return c.ExpenseReport }),
			},
		},
	}
}

func entityCmds() []*cobra.Command {
	defs := entities()
	cmds := make([]*cobra.Command, 0, len(defs)+1)
	for _, def := range defs {
		parent := &cobra.Command{Use: def.use, Short: def.short}
		for _, op := range def.ops {
			parent.AddCommand(opCmd(op))
		}
		cmds = append(cmds, parent)
	}

	return append(cmds, uploadCmd())
}

func opCmd(op entityOp) *cobra.Command {
	var rawParams []string
	var rawData string

	cmd := &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.ExactArgs(op.nArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			var data json.RawMessage
			if rawData != "" {
				if !json.Valid([]byte(rawData)) {
					return errors.New("--data is not valid JSON")
				}
				data = json.RawMessage(rawData)
			}

			out, err := op.run(cmd.Context(), a.client, args, params, data)
			if err != nil {
				return reportError(cmd, err)
			}

			rendered, err := render.JSON(out)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawParams, "param", nil, "query filter as key=value, repeatable")
	cmd.Flags().StringVar(&rawData, "data", "", "JSON request body")

	return cmd
}

// uploadCmd is the one command that cannot be expressed by the table
// shapes: it streams a file as multipart.
func uploadCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "os.Open()")
			}
			defer file.Close()

			meta, err := parseFields(fields)
			if err != nil {
				return err
			}

			out, err := a.client.UploadDocument(cmd.Context(), gateway.Upload{
				Fields:   meta,
				FileName: filepath.Base(args[0]),
				File:     file,
			})
			if err != nil {
				return reportError(cmd, err)
			}

			rendered, err := render.JSON(out)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fields, "field", nil, "metadata form field as key=value, repeatable")

	return cmd
}

// reportError prints a backend failure for humans. A 401 already
// cleared the stored tokens; here it becomes the login hint.
func reportError(cmd *cobra.Command, err error) error {
	if httpio.HasUnauthorized(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), render.Err("session expired, run `erpctl login`"))

		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), render.APIError(err))

	return err
}

func parseParams(raw []string) (url.Values, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	params := url.Values{}
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.Newf("invalid --param %q, want key=value", kv)
		}
		params.Add(k, v)
	}

	return params, nil
}

func parseFields(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	fields := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.Newf("invalid --field %q, want key=value", kv)
		}
		fields[k] = v
	}

	return fields, nil
}
