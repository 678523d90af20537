package keys

// Keys used to identify log message data items.
const Message = "message"
const AppName = "app_name"
const Request = "request"
const StatusCode = "status_code"
const Polo = "polo"
const Customer = "customer"
const Payment = "payment"
const BillingType = "billing_type"
const CustomerCount = "customer_count"
const FailedCustomers = "failed_customers"
const PagesFetched = "pages_fetched"
const Offset = "offset"
const Partition = "partition"
const SchemaName = "schema_name"
const Limit = "limit"
const Rows = "rows"
const MaxRegistros = "max_registros"
const ReportKind = "report_kind"
const AccessKey = "access_key"
const Partner = "partner"
const Action = "action"
const Topic = "topic"
const Store = "store"
const BindAddr = "bind_addr"
const Collection = "collection"
