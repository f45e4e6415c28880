package sqlinline

const QInsertUser = `--sql 13a1b31e-36a3-418e-a243-0eec0aba1381
insert into users (name, email, password_hash, phone, address, city, region, role)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id, created_at, updated_at;
`

const QSelectUserByID = `--sql da92f7fa-2040-4b25-b715-93da5d590a4a
select id, name, email, password_hash, phone, address, city, region, role, created_at, updated_at
from users
where id = $1
limit 1;
`

const QSelectUserByEmail = `--sql 97a9eae7-51db-42e0-87a1-487160a1995c
select id, name, email, password_hash, phone, address, city, region, role, created_at, updated_at
from users
where email = lower($1)
limit 1;
`

const QUpdateUserProfile = `--sql 46f5865f-c6c1-4cd9-841b-1da3709e21ba
update users
set name = $2,
    phone = $3,
    address = $4,
    city = $5,
    region = $6,
    updated_at = now()
where id = $1
returning id, name, email, password_hash, phone, address, city, region, role, created_at, updated_at;
`
