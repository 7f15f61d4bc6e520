package sqlconnect

// dialect carries the metadata-introspection SQL for one backend family.
// Each query string keeps its backend's own placeholder style. An empty
// schema argument means "all user schemas".
type dialect struct {
	name          string
	driverName    string
	defaultSchema string
	schemaNames   string
	tableNames    string
	viewNames     string
	columns       string
}

var postgresDialect = &dialect{
	name:          "postgres",
	driverName:    "pgx",
	defaultSchema: "public",

	schemaNames: `
		SELECT schema_name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY schema_name`,

	tableNames: `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		  AND table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		  AND ($1 = '' OR table_schema = $1)
		ORDER BY table_name`,

	viewNames: `
		SELECT table_name
		FROM information_schema.views
		WHERE table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		  AND ($1 = '' OR table_schema = $1)
		ORDER BY table_name`,

	columns: `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable,
			COALESCE(c.column_default, ''),
			c.ordinal_position,
			CASE WHEN pk.column_name IS NOT NULL THEN 1 ELSE 0 END AS is_primary
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT ku.column_name
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage ku
				ON tc.constraint_name = ku.constraint_name
				AND tc.table_schema = ku.table_schema
			WHERE tc.constraint_type = 'PRIMARY KEY'
				AND tc.table_schema = $1
				AND tc.table_name = $2
		) pk ON c.column_name = pk.column_name
		WHERE c.table_schema = $1
		  AND c.table_name = $2
		ORDER BY c.ordinal_position`,
}

var sqlserverDialect = &dialect{
	name:          "sqlserver",
	driverName:    "sqlserver",
	defaultSchema: "dbo",

	schemaNames: `
		SELECT schema_name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('sys', 'INFORMATION_SCHEMA', 'guest')
		  AND schema_name NOT LIKE 'db[_]%'
		ORDER BY schema_name`,

	tableNames: `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		  AND (@p1 = '' OR table_schema = @p1)
		ORDER BY table_name`,

	viewNames: `
		SELECT table_name
		FROM information_schema.views
		WHERE (@p1 = '' OR table_schema = @p1)
		ORDER BY table_name`,

	columns: `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable,
			COALESCE(c.column_default, ''),
			c.ordinal_position,
			CASE WHEN pk.column_name IS NOT NULL THEN 1 ELSE 0 END AS is_primary
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT ku.column_name
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage ku
				ON tc.constraint_name = ku.constraint_name
				AND tc.table_schema = ku.table_schema
			WHERE tc.constraint_type = 'PRIMARY KEY'
				AND tc.table_schema = @p1
				AND tc.table_name = @p2
		) pk ON c.column_name = pk.column_name
		WHERE c.table_schema = @p1
		  AND c.table_name = @p2
		ORDER BY c.ordinal_position`,
}
