package sqlinline

const QInsertComment = `--sql 26a91873-e8ff-479c-8d72-0028da2edbf1
insert into comments (request_id, user_id, text)
values ($1, $2, $3)
returning id;
`

const QListCommentsByRequest = `--sql 5088837d-c0a4-4e27-bac1-04654b754e7b
select c.id, c.request_id, c.user_id, c.text, c.created_at, u.name, u.role
from comments c
join users u on u.id = c.user_id
where c.request_id = $1
order by c.created_at asc, c.id asc;
`
