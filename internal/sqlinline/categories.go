package sqlinline

const QListCategories = `--sql 2b0457c0-87da-4c93-8fa3-fbdc538cfcf3
select id, name, description
from categories
order by id;
`

const QCategoryExists = `--sql 234c0c7e-724f-4769-9e38-13dd67136c66
select exists(select 1 from categories where id = $1);
`
