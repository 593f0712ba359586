// Package schema defines the database schema.
//
// Every tenant-scoped table carries a tenant_id column and a composite
// unique key (id, tenant_id). Relationships between tenant-scoped tables
// are composite foreign keys of the form (foreign_id, tenant_id) ->
// (id, tenant_id), so a row can never point at an entity owned by another
// tenant: a cross-tenant reference fails the foreign key instead of
// silently resolving. The tenant arm cascades on delete, so removing a
// user removes every owned row transitively.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		has_paid BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lists (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		subscriber_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (id, tenant_id),
		UNIQUE (tenant_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS subscribers (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		email VARCHAR(255) NOT NULL,
		first_name VARCHAR(255) NOT NULL DEFAULT '',
		last_name VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		optin_ip VARCHAR(45) NOT NULL DEFAULT '',
		optin_at TIMESTAMP,
		confirmation_token VARCHAR(64) NOT NULL DEFAULT '',
		is_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (id, tenant_id),
		UNIQUE (tenant_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS subscriber_lists (
		subscriber_id UUID NOT NULL,
		list_id UUID NOT NULL,
		tenant_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (subscriber_id, list_id),
		FOREIGN KEY (subscriber_id, tenant_id) REFERENCES subscribers(id, tenant_id) ON DELETE CASCADE,
		FOREIGN KEY (list_id, tenant_id) REFERENCES lists(id, tenant_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS suppression_entries (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		email VARCHAR(255) NOT NULL DEFAULT '',
		domain VARCHAR(255) NOT NULL DEFAULT '',
		reason VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (tenant_id, email, domain)
	)`,
	`CREATE TABLE IF NOT EXISTS templates (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		subject VARCHAR(998) NOT NULL,
		body_html TEXT NOT NULL,
		body_text TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (id, tenant_id),
		UNIQUE (tenant_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		subject VARCHAR(998) NOT NULL DEFAULT '',
		template_id UUID,
		sender_name VARCHAR(255) NOT NULL DEFAULT '',
		sender_email VARCHAR(255) NOT NULL DEFAULT '',
		list_ids UUID[] NOT NULL DEFAULT '{}',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		scheduled_at TIMESTAMP,
		sent_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (id, tenant_id),
		FOREIGN KEY (template_id, tenant_id) REFERENCES templates(id, tenant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_records (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		campaign_id UUID NOT NULL,
		subscriber_id UUID NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		sent_at TIMESTAMP,
		delivered_at TIMESTAMP,
		opened_at TIMESTAMP,
		clicked_at TIMESTAMP,
		bounced_at TIMESTAMP,
		complained_at TIMESTAMP,
		unsubscribed_at TIMESTAMP,
		failed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (campaign_id, subscriber_id),
		UNIQUE (campaign_id, subscriber_id, tenant_id),
		FOREIGN KEY (campaign_id, tenant_id) REFERENCES campaigns(id, tenant_id) ON DELETE CASCADE,
		FOREIGN KEY (subscriber_id, tenant_id) REFERENCES subscribers(id, tenant_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS link_click_events (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		campaign_id UUID NOT NULL,
		subscriber_id UUID NOT NULL,
		url TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (campaign_id, subscriber_id, tenant_id)
			REFERENCES delivery_records(campaign_id, subscriber_id, tenant_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS web_view_events (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		campaign_id UUID NOT NULL,
		subscriber_id UUID NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		ip VARCHAR(45) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (campaign_id, subscriber_id, tenant_id)
			REFERENCES delivery_records(campaign_id, subscriber_id, tenant_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_analytics (
		campaign_id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		total_subscribers INTEGER NOT NULL DEFAULT 0,
		sent INTEGER NOT NULL DEFAULT 0,
		delivered INTEGER NOT NULL DEFAULT 0,
		opened INTEGER NOT NULL DEFAULT 0,
		clicked INTEGER NOT NULL DEFAULT 0,
		bounced INTEGER NOT NULL DEFAULT 0,
		complained INTEGER NOT NULL DEFAULT 0,
		unsubscribed INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (campaign_id, tenant_id),
		FOREIGN KEY (campaign_id, tenant_id) REFERENCES campaigns(id, tenant_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS automation_rules (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		trigger_type VARCHAR(40) NOT NULL,
		condition JSONB NOT NULL DEFAULT '{}',
		action VARCHAR(40) NOT NULL,
		config JSONB NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (id, tenant_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subscribers_tenant_status ON subscribers(tenant_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_records_campaign ON delivery_records(tenant_id, campaign_id)`,
	`CREATE INDEX IF NOT EXISTS idx_suppression_tenant_email ON suppression_entries(tenant_id, email)`,
	`CREATE INDEX IF NOT EXISTS idx_suppression_tenant_domain ON suppression_entries(tenant_id, domain)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_tenant_status ON campaigns(tenant_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_automation_rules_tenant_trigger ON automation_rules(tenant_id, trigger_type) WHERE is_active`,
}

// TableNames returns a list of all table names in creation order
var TableNames = []string{
	"users",
	"lists",
	"subscribers",
	"subscriber_lists",
	"suppression_entries",
	"templates",
	"campaigns",
	"delivery_records",
	"link_click_events",
	"web_view_events",
	"campaign_analytics",
	"automation_rules",
}
