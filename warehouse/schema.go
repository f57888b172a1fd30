package warehouse

// Table names for the two staging relations and the star schema.
const (
	TableStagingEvents = "staging_events"
	TableStagingSongs  = "staging_songs"
	TableSongplays     = "songplays"
	TableUsers         = "users"
	TableSongs         = "songs"
	TableArtists       = "artists"
	TableTime          = "time"
)

// Staging tables hold raw, minimally-validated data bulk-loaded from S3.
// They carry no primary keys except staging_songs.artist_id; duplicates and nulls are expected.
const createStagingEvents = `create table if not exists staging_events
    (
        artist varchar,
        auth varchar,
        first_name varchar,
        gender varchar,
        itemInSession integer,
        last_name varchar,
        length float,
        level varchar,
        location varchar,
        method varchar,
        page varchar,
        registration bigint,
        sessionId integer,
        song varchar,
        status integer,
        ts timestamp,
        userAgent varchar,
        userId integer
    )`

const createStagingSongs = `create table if not exists staging_songs
    (
        num_songs integer,
        artist_id varchar not null primary key,
        artist_latitude float,
        artist_longitude float,
        artist_location varchar,
        artist_name varchar,
        song_id varchar sortkey,
        title varchar,
        duration float,
        year integer
    )`

// songplays is the fact table. The songplay_id surrogate key is generated by an
// identity column; references to the dimensions are not enforced with foreign keys.
const createSongplays = `create table if not exists songplays
    (
        songplay_id integer identity(0,1) not null primary key,
        start_time timestamp not null,
        user_id integer not null,
        level varchar,
        song_id varchar,
        artist_id varchar,
        session_id integer,
        location varchar,
        user_agent varchar
    )`

const createUsers = `create table if not exists users
    (
        user_id integer not null primary key,
        first_name varchar not null,
        last_name varchar not null,
        gender varchar(1),
        level varchar not null
    )`

const createSongs = `create table if not exists songs
    (
        song_id varchar not null primary key,
        title varchar not null,
        artist_id varchar not null,
        year integer,
        duration float
    )`

const createArtists = `create table if not exists artists
    (
        artist_id varchar not null primary key,
        name varchar not null,
        location varchar,
        latitude float,
        longitude float
    )`

const createTime = `create table if not exists time
    (
        start_time timestamp not null primary key,
        hour integer,
        day integer,
        week integer,
        month integer,
        year integer,
        weekday varchar
    )`

// CreateTableStatements creates the staging tables first then the star schema.
func CreateTableStatements() []Statement {
	return []Statement{
		{Name: "create-" + TableStagingEvents, Table: TableStagingEvents, SQL: createStagingEvents},
		{Name: "create-" + TableStagingSongs, Table: TableStagingSongs, SQL: createStagingSongs},
		{Name: "create-" + TableSongplays, Table: TableSongplays, SQL: createSongplays},
		{Name: "create-" + TableUsers, Table: TableUsers, SQL: createUsers},
		{Name: "create-" + TableSongs, Table: TableSongs, SQL: createSongs},
		{Name: "create-" + TableArtists, Table: TableArtists, SQL: createArtists},
		{Name: "create-" + TableTime, Table: TableTime, SQL: createTime},
	}
}

// DropTableStatements drops all seven tables so a fresh run starts from empty relations.
// Reruns of the transformation against non-empty warehouse tables fail on the
// primary keys above; there is deliberately no upsert path.
func DropTableStatements() []Statement {
	tables := []string{
		TableStagingEvents,
		TableStagingSongs,
		TableSongplays,
		TableUsers,
		TableSongs,
		TableArtists,
		TableTime,
	}
	retval := make([]Statement, 0, len(tables))
	for _, t := range tables {
		retval = append(retval, Statement{Name: "drop-" + t, Table: t, SQL: "drop table if exists " + t})
	}
	return retval
}
